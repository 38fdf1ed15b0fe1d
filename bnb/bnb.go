package bnb

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/nothree/model"
)

// ErrTimeLimit is returned when Options.TimeLimit expires before the
// optimum is proven.
var ErrTimeLimit = errors.New("bnb: time limit exceeded")

// Options configures the search.
//
// Fields:
//   - TimeLimit — soft budget per Solve; 0 disables it.
//   - NoBound   — disables the UB pruning (testing only).
type Options struct {
	TimeLimit time.Duration
	NoBound   bool
}

// Solver implements model.Solver with an exact Branch-and-Bound search.
type Solver struct {
	opts Options
}

// New returns a Branch-and-Bound solver.
func New(opts Options) *Solver {
	return &Solver{opts: opts}
}

var _ model.Solver = (*Solver)(nil)

// engine holds all search data; one engine per Solve call.
type engine struct {
	vars     int
	useBound bool

	// Time budget
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int
	stopped     bool

	// Rows: slack[r] = capacity left; rowsOf[v] = rows through v
	slack  []int
	rowsOf [][]int

	// Bound partition: part[v] = class row of v or -1
	part      []int
	partRows  []int
	partFree  []int // undecided cells per class row, indexed like slack
	uncovered int   // undecided cells outside the class

	// Current state
	value []bool
	count int

	// Incumbent
	best      []bool
	bestCount int
}

// Solve implements model.Solver.
func (s *Solver) Solve(ctx context.Context, p *model.Problem) (model.Solution, error) {
	if err := ctx.Err(); err != nil {
		return model.Solution{Status: model.Loaded}, err
	}

	for _, r := range p.Rows {
		if r.Bound < 0 {
			return model.Solution{Status: model.Infeasible}, nil
		}
	}

	e := newEngine(ctx, p, !s.opts.NoBound)
	if s.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(s.opts.TimeLimit)
	}

	e.seed()
	e.dfs(0)

	if e.stopped {
		if err := ctx.Err(); err != nil {
			return model.Solution{Status: model.Loaded}, err
		}
		return model.Solution{Status: model.Loaded}, ErrTimeLimit
	}

	return model.Solution{Status: model.Optimal, Values: e.best, Objective: e.bestCount}, nil
}

func newEngine(ctx context.Context, p *model.Problem, useBound bool) *engine {
	vars := p.Vars()
	e := &engine{
		vars:     vars,
		useBound: useBound,
		ctx:      ctx,
		slack:    make([]int, len(p.Rows)),
		rowsOf:   make([][]int, vars),
		part:     make([]int, vars),
		partFree: make([]int, len(p.Rows)),
		value:    make([]bool, vars),
		best:     make([]bool, vars),
	}
	for i, r := range p.Rows {
		e.slack[i] = r.Bound
		for _, v := range r.Vars {
			e.rowsOf[v] = append(e.rowsOf[v], i)
		}
	}
	e.usePartition(p)

	return e
}

// usePartition loads the disjoint rows of p.Partition into the bound.
func (e *engine) usePartition(p *model.Problem) {
	chosen, _ := p.Partition()
	for v := range e.part {
		e.part[v] = -1
	}
	e.uncovered = e.vars
	for _, ri := range chosen {
		for _, v := range p.Rows[ri].Vars {
			e.part[v] = ri
			e.partFree[ri]++
			e.uncovered--
		}
	}
	e.partRows = chosen
}

// deadlineCheck performs a rare budget test (every 4096 node events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if e.stopped {
		return true
	}
	if e.steps&4095 != 0 {
		return false
	}
	if e.ctx.Err() != nil || (e.useDeadline && time.Now().After(e.deadline)) {
		e.stopped = true
	}

	return e.stopped
}

// upperBound is admissible: no completion selects more cells.
func (e *engine) upperBound() int {
	ub := e.count + e.uncovered
	for _, ri := range e.partRows {
		ub += min(e.slack[ri], e.partFree[ri])
	}

	return ub
}

func (e *engine) canSelect(v int) bool {
	for _, r := range e.rowsOf[v] {
		if e.slack[r] == 0 {
			return false
		}
	}

	return true
}

// decide marks v as no longer free; sel applies the selection.
func (e *engine) decide(v int, sel bool) {
	if ri := e.part[v]; ri >= 0 {
		e.partFree[ri]--
	} else {
		e.uncovered--
	}
	if sel {
		e.value[v] = true
		e.count++
		for _, r := range e.rowsOf[v] {
			e.slack[r]--
		}
	}
}

// undo reverts decide(v, sel).
func (e *engine) undo(v int, sel bool) {
	if ri := e.part[v]; ri >= 0 {
		e.partFree[ri]++
	} else {
		e.uncovered++
	}
	if sel {
		e.value[v] = false
		e.count--
		for _, r := range e.rowsOf[v] {
			e.slack[r]++
		}
	}
}

// seed records the greedy "select whenever possible" assignment.
func (e *engine) seed() {
	for v := 0; v < e.vars; v++ {
		e.decide(v, e.canSelect(v))
	}
	e.commit()
	for v := e.vars - 1; v >= 0; v-- {
		e.undo(v, e.value[v])
	}
}

func (e *engine) commit() {
	copy(e.best, e.value)
	e.bestCount = e.count
}

// dfs decides variable v and everything after it.
func (e *engine) dfs(v int) {
	if e.deadlineCheck() {
		return
	}
	if v == e.vars {
		if e.count > e.bestCount {
			e.commit()
		}
		return
	}
	if e.useBound && e.upperBound() <= e.bestCount {
		return
	}

	if e.canSelect(v) {
		e.decide(v, true)
		e.dfs(v + 1)
		e.undo(v, true)
	}
	e.decide(v, false)
	e.dfs(v + 1)
	e.undo(v, false)
}
