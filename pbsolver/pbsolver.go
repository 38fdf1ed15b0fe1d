package pbsolver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/golang/glog"

	"github.com/katalvlaran/nothree/model"
)

// pollInterval is how often a running search is checked for a result
// while waiting on the context.
const pollInterval = 2 * time.Millisecond

// Options configures the solver.
//
// Fields:
//   - Timeout — upper bound on one Solve call; 0 means no limit.
//   - Verbose — logs every improved incumbent through glog.
//   - NoBound — keeps searching past model.Problem.Partition's bound and
//     proves optimality by unsatisfiability alone (testing only).
type Options struct {
	Timeout time.Duration
	Verbose bool
	NoBound bool
}

// Solver solves model.Problem instances with the gini SAT solver.
// A Solver holds no per-call state and may be reused.
type Solver struct {
	opts Options
}

// New returns a SAT-backed model.Solver.
func New(opts Options) *Solver {
	return &Solver{opts: opts}
}

var _ model.Solver = (*Solver)(nil)

// network is the circuit of one presolved problem.
type network struct {
	c     *logic.C
	cells []z.Lit // cells[i] is compact var i; cells[0] unused
	rows  []z.Lit // each must hold
	total *logic.CardSort
}

// build codes every row as a sorting network whose "≤ bound" output is
// asserted, plus one network counting all constrained cells.
func build(enc encoding) network {
	k := enc.vars()
	nw := network{c: logic.NewC(), cells: make([]z.Lit, k+1)}
	for i := 1; i <= k; i++ {
		nw.cells[i] = nw.c.Lit()
	}
	for _, r := range enc.rows {
		ms := make([]z.Lit, len(r.vars))
		for i, v := range r.vars {
			ms[i] = nw.cells[v]
		}
		nw.rows = append(nw.rows, nw.c.CardSort(ms).Leq(r.bound))
	}
	nw.total = nw.c.CardSort(nw.cells[1:])

	return nw
}

// Solve implements model.Solver.
//
// The search is linear: each round assumes "more cells than the
// incumbent" and solves again. It ends when a round is unsatisfiable or
// the incumbent reaches the bound of model.Problem.Partition.
func (s *Solver) Solve(ctx context.Context, p *model.Problem) (model.Solution, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return model.Solution{Status: model.Loaded}, err
	}

	enc := encode(p)
	values, free := enc.seed()
	k := enc.vars()
	if k == 0 {
		return model.Solution{Status: model.Optimal, Values: values, Objective: free}, nil
	}

	ub := p.Vars()
	if !s.opts.NoBound {
		_, ub = p.Partition()
	}

	nw := build(enc)
	g := gini.NewV(nw.c.Len())
	nw.c.ToCnf(g)
	for _, m := range nw.rows {
		g.Add(m)
		g.Add(0)
	}

	best := -1
	for free+best < ub {
		g.Assume(nw.total.Geq(best + 1))
		res, err := run(ctx, g)
		if err != nil {
			return model.Solution{Status: model.Loaded}, err
		}
		if res < 0 {
			break
		}
		best = 0
		for i := 1; i <= k; i++ {
			on := g.Value(nw.cells[i])
			values[enc.toVar[i]] = on
			if on {
				best++
			}
		}
		if s.opts.Verbose {
			glog.Infof("pbsolver: incumbent %d (bound %d)", free+best, ub)
		}
	}
	if best < 0 {
		return model.Solution{Status: model.Infeasible}, nil
	}

	return model.Solution{Status: model.Optimal, Values: values, Objective: free + best}, nil
}

// run solves g in the background and stops it when ctx is done.
// It returns gini's result: 1 sat, -1 unsat.
func run(ctx context.Context, g inter.GoSolvable) (int, error) {
	sv := g.GoSolve()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()

	for {
		if res, done := sv.Test(); done {
			return res, nil
		}
		select {
		case <-ctx.Done():
			sv.Stop()
			return 0, ctx.Err()
		case <-tick.C:
		}
	}
}
