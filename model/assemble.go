package model

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
	"github.com/katalvlaran/nothree/lineset"
)

// Assemble builds the program for an n×n board from line constraints.
// Every constraint becomes one Row over its cells' flat indices.
//
// Errors: lattice.ErrDegenerateGrid if n ≤ 0; ErrBadConstraint if a run
// leaves the board.
//
// Complexity: O(Σ run lengths).
func Assemble(n int, cons []lineset.Constraint) (*Problem, error) {
	grid, err := lattice.NewGrid(n)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(cons))
	for i, c := range cons {
		for _, p := range c.Run.Cells {
			if !grid.Contains(p) {
				return nil, fmt.Errorf("%w: constraint %d, cell %v", ErrBadConstraint, i, p)
			}
		}
		rows = append(rows, Row{Vars: c.Indices(n), Bound: c.Bound})
	}

	return &Problem{N: n, Rows: rows}, nil
}

// Solve runs s on p and decodes an optimal assignment.
//
// Behavior:
//   - Solver error → Result{Status} and the wrapped error.
//   - Status != Optimal → Result{Status} and *StatusError; no decoding.
//   - Optimal → the assignment is checked for size, against every row and
//     against the reported objective, then decoded to points.
func Solve(ctx context.Context, p *Problem, s Solver) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSolver
	}

	sol, err := s.Solve(ctx, p)
	if err != nil {
		return Result{Status: sol.Status}, fmt.Errorf("model: solve: %w", err)
	}
	if sol.Status != Optimal {
		return Result{Status: sol.Status}, &StatusError{Status: sol.Status}
	}
	if len(sol.Values) != p.Vars() {
		return Result{Status: sol.Status}, fmt.Errorf("%w: got %d, want %d", ErrShapeMismatch, len(sol.Values), p.Vars())
	}
	if i, ok := p.Feasible(sol.Values); !ok {
		return Result{Status: sol.Status}, fmt.Errorf("%w: row %d", ErrRowViolated, i)
	}

	points := Decode(p.N, sol.Values)
	if len(points) != sol.Objective {
		return Result{Status: sol.Status}, fmt.Errorf("%w: objective %d, %d cells selected", ErrObjectiveMismatch, sol.Objective, len(points))
	}

	return Result{
		Status:    sol.Status,
		Objective: sol.Objective,
		Values:    sol.Values,
		Points:    points,
	}, nil
}

// Feasible reports whether values satisfies every row. On failure it
// returns the index of the first violated row.
func (p *Problem) Feasible(values []bool) (int, bool) {
	for i, r := range p.Rows {
		sum := 0
		for _, v := range r.Vars {
			if v < len(values) && values[v] {
				sum++
			}
		}
		if sum > r.Bound {
			return i, false
		}
	}

	return -1, true
}

// Decode maps selected flat indices to points (idx / n, idx % n),
// in increasing index order.
func Decode(n int, values []bool) []lattice.Point {
	var pts []lattice.Point
	for idx, on := range values {
		if on {
			pts = append(pts, lattice.Point{Row: idx / n, Col: idx % n})
		}
	}

	return pts
}

// Describe lists every variable as "x[i,j] = 0|1".
func (p *Problem) Describe(values []bool) []string {
	out := make([]string, len(values))
	for v, on := range values {
		bit := 0
		if on {
			bit = 1
		}
		out[v] = fmt.Sprintf("%s = %d", p.VarName(v), bit)
	}

	return out
}
