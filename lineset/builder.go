package lineset

import (
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
)

// Build emits the line constraints of an n×n board for the given
// directions (typically lattice.Directions(n)).
//
// Algorithm:
//  1. For every anchor in row-major order, for every direction d,
//     for step in {d, d.Mirror()} (mirror skipped for axis directions):
//     a. In MaximalRuns mode skip the anchor unless anchor − step is
//     off the board (the anchor starts its line).
//     b. Walk the ray; drop it if shorter than opts.MinRunLength.
//     c. In MaximalRuns mode drop it if a run with the same endpoints
//     was already emitted.
//  2. Each kept ray becomes Constraint{Run, opts.Bound}.
//
// Output order is deterministic for a fixed (n, dirs, opts).
//
// Errors:
//   - lattice.ErrDegenerateGrid if n ≤ 0.
//   - ErrZeroStep if dirs contains (0,0).
//   - ErrNotReduced if a step is not gcd-reduced: its walk skips cells,
//     and a skipping run can share endpoints with the full line.
//   - Options.Validate errors.
func Build(n int, dirs []lattice.Direction, opts Options) ([]Constraint, error) {
	grid, err := lattice.NewGrid(n)
	if err != nil {
		return nil, err
	}
	if err = opts.Validate(); err != nil {
		return nil, err
	}
	for _, d := range dirs {
		r, err := lattice.Reduce(d.DI, d.DJ)
		if err != nil {
			return nil, ErrZeroStep
		}
		if r != d {
			return nil, fmt.Errorf("%w: %v", ErrNotReduced, d)
		}
	}

	var (
		out   []Constraint
		seen  map[[2]int]struct{}
		steps = make([]lattice.Direction, 0, 2)
	)
	if opts.Mode == MaximalRuns {
		seen = make(map[[2]int]struct{})
	}

	for _, anchor := range grid.Cells() {
		for _, d := range dirs {
			steps = append(steps[:0], d)
			if !d.Axis() {
				steps = append(steps, d.Mirror())
			}
			for _, step := range steps {
				if opts.Mode == MaximalRuns && grid.InBounds(anchor.Row-step.DI, anchor.Col-step.DJ) {
					continue // not the first cell of its line
				}
				cells := Walk(grid, anchor, step)
				if len(cells) < opts.MinRunLength {
					continue
				}
				if seen != nil {
					key := endpoints(grid, cells)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
				}
				out = append(out, Constraint{
					Run:   Run{Anchor: anchor, Step: step, Cells: cells},
					Bound: opts.Bound,
				})
			}
		}
	}

	return out, nil
}

// Walk returns the cells anchor + k·step for k = 0, 1, … while both
// coordinates stay in [0, n). The bounds test is applied to each axis
// at every step. An off-board anchor yields nil; a zero step yields the
// anchor alone.
func Walk(grid lattice.Grid, anchor lattice.Point, step lattice.Direction) []lattice.Point {
	if !grid.Contains(anchor) {
		return nil
	}
	if step.DI == 0 && step.DJ == 0 {
		return []lattice.Point{anchor}
	}

	var cells []lattice.Point
	r, c := anchor.Row, anchor.Col
	for grid.InBounds(r, c) {
		cells = append(cells, lattice.Point{Row: r, Col: c})
		r += step.DI
		c += step.DJ
	}

	return cells
}

// endpoints is the unordered (min, max) index pair of a run's ends.
// Two runs of the same line share it; runs of different lines with two
// or more cells never do.
func endpoints(grid lattice.Grid, cells []lattice.Point) [2]int {
	a, b := grid.Index(cells[0]), grid.Index(cells[len(cells)-1])
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
