package model

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
)

// Status is the solver outcome, numbered like the classic MIP status codes.
type Status int

const (
	// Loaded: the model was built but no search finished.
	Loaded Status = iota + 1
	// Optimal: a proven optimum is available.
	Optimal
	// Infeasible: no assignment satisfies the rows.
	Infeasible
	// InfeasibleOrUnbounded: the solver could not tell which.
	InfeasibleOrUnbounded
	// Unbounded: the objective can grow without limit.
	Unbounded
)

// String returns the upper-case status name.
func (s Status) String() string {
	switch s {
	case Loaded:
		return "LOADED"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case InfeasibleOrUnbounded:
		return "INF_OR_UNBD"
	case Unbounded:
		return "UNBOUNDED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Row is the linear constraint Σ x[v] ≤ Bound over the listed variables.
type Row struct {
	Vars  []int
	Bound int
}

// Problem is the binary program handed to a Solver:
// maximize Σ x[v] for v in [0, N²) subject to Rows.
type Problem struct {
	N    int
	Rows []Row
}

// Vars returns the number of binary variables, N².
func (p *Problem) Vars() int { return p.N * p.N }

// VarName returns "x[i,j]" for flat index v.
func (p *Problem) VarName(v int) string {
	return fmt.Sprintf("x[%d,%d]", v/p.N, v%p.N)
}

// Solution is what a Solver returns. Values and Objective are meaningful
// only when Status == Optimal.
type Solution struct {
	Status    Status
	Values    []bool
	Objective int
}

// Solver is the external optimizer boundary.
// Implementations must honor ctx cancellation and report Loaded when the
// search was stopped before it finished.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (Solution, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, p *Problem) (Solution, error)

// Solve calls f(ctx, p).
func (f SolverFunc) Solve(ctx context.Context, p *Problem) (Solution, error) { return f(ctx, p) }

// Result is the decoded outcome of Solve.
type Result struct {
	Status    Status
	Objective int
	Values    []bool
	Points    []lattice.Point
}
