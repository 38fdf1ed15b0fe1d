package lattice

import "fmt"

// Point is a board cell. Both coordinates lie in [0, n).
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is an integer step (DI, DJ) applied to (row, col).
// Directions returned by this package are reduced: gcd(|DI|, |DJ|) == 1.
type Direction struct {
	DI, DJ int
}

// String renders the direction as "(di,dj)".
func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.DI, d.DJ)
}

// Mirror returns the reflected step (−DI, DJ).
// For axis-aligned directions the mirror spans the same lines.
func (d Direction) Mirror() Direction {
	return Direction{DI: -d.DI, DJ: d.DJ}
}

// Axis reports whether d is horizontal or vertical.
func (d Direction) Axis() bool {
	return d.DI == 0 || d.DJ == 0
}

// Slope returns the canonical key of d's line orientation: the reduced
// pair with DJ ≥ 0 (and DI > 0 when DJ == 0). Two steps share a Slope
// exactly when they are parallel.
func (d Direction) Slope() (Direction, error) {
	r, err := Reduce(d.DI, d.DJ)
	if err != nil {
		return Direction{}, err
	}
	if r.DJ < 0 || (r.DJ == 0 && r.DI < 0) {
		r.DI, r.DJ = -r.DI, -r.DJ
	}

	return r, nil
}

// Grid is the immutable n×n board.
type Grid struct {
	N int
}

// NewGrid validates n and returns the board.
// Returns ErrDegenerateGrid if n ≤ 0.
func NewGrid(n int) (Grid, error) {
	if n <= 0 {
		return Grid{}, ErrDegenerateGrid
	}

	return Grid{N: n}, nil
}
