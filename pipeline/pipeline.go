package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/nothree/lattice"
	"github.com/katalvlaran/nothree/lineset"
	"github.com/katalvlaran/nothree/model"
	"github.com/katalvlaran/nothree/verify"
)

// ErrNoSolver indicates Options.Solver is nil.
var ErrNoSolver = errors.New("pipeline: solver is required")

// Renderer persists accepted points; the returned string names the artifact.
type Renderer interface {
	Render(n int, points []lattice.Point) (string, error)
}

// Options wires the collaborators of Run.
//
// Fields:
//   - Cache    — shared direction/constraint cache; nil builds a fresh
//     one from Lines.
//   - Lines    — build options used when Cache is nil; the zero value
//     means lineset.DefaultOptions().
//   - Solver   — the external optimizer (required).
//   - Export   — optional; receives the assembled problem before solving.
//   - Renderer — optional; nil skips rendering.
type Options struct {
	Cache    *lineset.Cache
	Lines    lineset.Options
	Solver   model.Solver
	Export   func(*model.Problem) error
	Renderer Renderer
}

// Report summarizes one run.
type Report struct {
	N           int
	Directions  int
	Constraints int
	Status      model.Status
	Objective   int
	Points      []lattice.Point
	Verdict     verify.Verdict
	Artifact    string
	Elapsed     time.Duration
}

// Run executes every stage for an n×n board.
func Run(ctx context.Context, n int, opts Options) (Report, error) {
	if n <= 0 {
		return Report{}, lattice.ErrDegenerateGrid
	}
	if opts.Solver == nil {
		return Report{}, ErrNoSolver
	}
	cache := opts.Cache
	if cache == nil {
		lines := opts.Lines
		if lines == (lineset.Options{}) {
			lines = lineset.DefaultOptions()
		}
		cache = lineset.NewCache(lines)
	}

	start := time.Now()
	rep := Report{N: n}

	lm, err := cache.Get(n)
	if err != nil {
		return rep, fmt.Errorf("pipeline: build lines: %w", err)
	}
	rep.Directions = len(lm.Directions)
	rep.Constraints = len(lm.Constraints)
	glog.Infof("n=%d: %d directions, %d constraints (%s)", n, rep.Directions, rep.Constraints, cache.Options().Mode)

	prob, err := model.Assemble(n, lm.Constraints)
	if err != nil {
		return rep, fmt.Errorf("pipeline: assemble: %w", err)
	}
	if opts.Export != nil {
		if err = opts.Export(prob); err != nil {
			return rep, fmt.Errorf("pipeline: export: %w", err)
		}
	}

	solveStart := time.Now()
	res, err := model.Solve(ctx, prob, opts.Solver)
	rep.Status = res.Status
	glog.Infof("n=%d: optimization status %s", n, res.Status)
	if glog.V(1) {
		glog.Infof("n=%d: solver took %s", n, time.Since(solveStart))
	}
	if err != nil {
		rep.Elapsed = time.Since(start)
		return rep, err
	}
	rep.Objective = res.Objective
	rep.Points = res.Points
	glog.Infof("n=%d: optimal objective %d", n, res.Objective)
	if glog.V(2) {
		for _, line := range prob.Describe(res.Values) {
			glog.Info(line)
		}
	}

	if err = verify.InGrid(n, res.Points); err != nil {
		rep.Elapsed = time.Since(start)
		return rep, fmt.Errorf("pipeline: verify: %w", err)
	}
	rep.Verdict = verify.Verify(res.Points)
	glog.Infof("n=%d: verification %s", n, rep.Verdict)
	if !rep.Verdict.Valid {
		rep.Elapsed = time.Since(start)
		return rep, rep.Verdict.Err()
	}

	if opts.Renderer != nil {
		rep.Artifact, err = opts.Renderer.Render(n, res.Points)
		if err != nil {
			rep.Elapsed = time.Since(start)
			return rep, fmt.Errorf("pipeline: render: %w", err)
		}
		glog.Infof("n=%d: wrote %s", n, rep.Artifact)
	}
	rep.Elapsed = time.Since(start)

	return rep, nil
}
