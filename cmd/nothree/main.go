// Command nothree searches for the largest set of cells on an n×n board
// with no three cells on a common line, verifies it and saves a picture.
//
// Usage:
//
//	nothree -n 8 -out ./boards
//	nothree -config nothree.yaml -ascii -v=1 -logtostderr
//	nothree -ask -view -solver bnb
//	nothree -n 10 -opb n10.opb -no-render
//
// Flags override the YAML file given by -config. glog flags (-v,
// -logtostderr, -log_dir) control logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/golang/glog"

	"github.com/katalvlaran/nothree/bnb"
	"github.com/katalvlaran/nothree/config"
	"github.com/katalvlaran/nothree/lattice"
	"github.com/katalvlaran/nothree/lineset"
	"github.com/katalvlaran/nothree/model"
	"github.com/katalvlaran/nothree/pbsolver"
	"github.com/katalvlaran/nothree/pipeline"
	"github.com/katalvlaran/nothree/render"
	"github.com/katalvlaran/nothree/verify"
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	n := flag.Int("n", 0, "board size")
	solverName := flag.String("solver", "", "solver: sat or bnb")
	mode := flag.String("mode", "", "constraint mode: maximal or rays")
	minRun := flag.Int("min-run", 0, "skip runs shorter than this")
	timeout := flag.Duration("timeout", 0, "solver time limit (0 = none)")
	out := flag.String("out", "", "directory for the PNG artifact")
	cell := flag.Int("cell", 0, "PNG pixels per cell")
	noRender := flag.Bool("no-render", false, "do not write the PNG artifact")
	ascii := flag.Bool("ascii", false, "print the board as text")
	view := flag.Bool("view", false, "show the board in the terminal")
	ask := flag.Bool("ask", false, "prompt for the board size")
	verbose := flag.Bool("verbose", false, "print solver progress")
	opb := flag.String("opb", "", "also write the model to this OPB file")
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			glog.Exitf("load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *n
		case "solver":
			cfg.Solver = *solverName
		case "mode":
			cfg.Mode = *mode
		case "min-run":
			cfg.MinRun = *minRun
		case "timeout":
			cfg.Timeout = *timeout
		case "out":
			cfg.Render.Dir = *out
		case "cell":
			cfg.Render.Cell = *cell
		case "no-render":
			cfg.Render.Enabled = !*noRender
		case "view":
			cfg.Render.Terminal = *view
		case "verbose":
			cfg.Verbose = *verbose
		case "opb":
			cfg.OPB = *opb
		}
	})
	if *ask {
		size, err := askSize(cfg.N)
		if err != nil {
			glog.Exitf("read board size: %v", err)
		}
		cfg.N = size
	}
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid configuration: %v", err)
	}
	if cfg.N == 0 {
		glog.Exitf("invalid configuration: %v", lattice.ErrDegenerateGrid)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if code := run(ctx, cfg, *ascii); code != 0 {
		glog.Flush()
		os.Exit(code)
	}
}

// run executes the pipeline and prints the console summary.
// It returns the process exit code.
func run(ctx context.Context, cfg config.Config, ascii bool) int {
	lines, err := cfg.LinesetOptions()
	if err != nil {
		glog.Errorf("lines: %v", err)
		return 2
	}
	opts := pipeline.Options{
		Cache:  lineset.NewCache(lines),
		Solver: newSolver(cfg),
	}
	if cfg.Render.Enabled {
		opts.Renderer = render.FileRenderer{Dir: cfg.Render.Dir, Cell: cfg.Render.Cell}
	}
	if cfg.OPB != "" {
		opts.Export = func(p *model.Problem) error { return writeOPB(cfg.OPB, p) }
	}

	rep, err := pipeline.Run(ctx, cfg.N, opts)

	return report(cfg, rep, err, ascii)
}

// report prints the console summary of one run and maps err to the exit
// code.
func report(cfg config.Config, rep pipeline.Report, err error, ascii bool) int {
	if rep.Status != 0 {
		fmt.Printf("The optimization status is %s\n", rep.Status)
	}

	var ce *verify.CollinearError
	switch {
	case errors.Is(err, model.ErrNotOptimal), errors.Is(err, bnb.ErrTimeLimit),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		fmt.Printf("No optimal solution: %v\n", err)
		return 1
	case errors.As(err, &ce):
		fmt.Printf("Optimal objective value: %d\n", rep.Objective)
		fmt.Printf("Solution is incorrect: %v %v %v are on one line\n", ce.Triple[0], ce.Triple[1], ce.Triple[2])
		return 3
	case err != nil && rep.Verdict.Valid:
		// Solved and verified; only the artifact failed.
		fmt.Printf("Optimal objective value: %d\nSolution is correct\n", rep.Objective)
		glog.Errorf("render: %v", err)
		return 4
	case err != nil:
		glog.Errorf("pipeline: %v", err)
		return 2
	}

	fmt.Printf("Optimal objective value: %d\n", rep.Objective)
	fmt.Printf("Solution is correct (%d points, %s)\n", len(rep.Points), rep.Elapsed.Round(time.Millisecond))
	if rep.Artifact != "" {
		fmt.Printf("Board written to %s\n", rep.Artifact)
	}
	if ascii {
		fmt.Print(render.Text(cfg.N, rep.Points))
	}
	if cfg.Render.Terminal {
		if err = render.View(cfg.N, rep.Points); err != nil {
			glog.Errorf("view: %v", err)
			return 4
		}
	}

	return 0
}

// newSolver picks the configured model.Solver.
func newSolver(cfg config.Config) model.Solver {
	if cfg.Solver == config.SolverBnB {
		return bnb.New(bnb.Options{TimeLimit: cfg.Timeout})
	}

	return pbsolver.New(pbsolver.Options{Timeout: cfg.Timeout, Verbose: cfg.Verbose})
}

// writeOPB saves p to path in the OPB format.
func writeOPB(path string, p *model.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = pbsolver.WriteOPB(f, p); err != nil {
		f.Close()
		return err
	}
	glog.Infof("n=%d: model written to %s", p.N, path)

	return f.Close()
}

// askSize prompts for n with def as the suggested answer.
func askSize(def int) (int, error) {
	var answer string
	prompt := &survey.Input{
		Message: "Board size n:",
		Default: strconv.Itoa(def),
		Help:    "Side length of the square board; the search uses n² binary variables.",
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(validateSize)); err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(answer))
}

// validateSize accepts positive integers.
func validateSize(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected text, got %T", ans)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v <= 0 {
		return lattice.ErrDegenerateGrid
	}

	return nil
}
