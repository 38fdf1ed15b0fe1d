package verify

import (
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
)

// Verdict is the outcome of Verify. Triple is set only when Valid is false.
type Verdict struct {
	Valid  bool
	Triple [3]lattice.Point
}

// Err converts v to nil or a *CollinearError.
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}

	return &CollinearError{Triple: v.Triple}
}

// String returns "valid" or "invalid: (a) (b) (c)".
func (v Verdict) String() string {
	if v.Valid {
		return "valid"
	}

	return fmt.Sprintf("invalid: %v %v %v", v.Triple[0], v.Triple[1], v.Triple[2])
}

// Collinear reports whether a, b and c lie on one line, with x = Row and
// y = Col. Exact for integer coordinates.
func Collinear(a, b, c lattice.Point) bool {
	return (b.Col-a.Col)*(c.Row-a.Row) == (c.Col-a.Col)*(b.Row-a.Row)
}

// Verify tests every unordered triple of points, i < j < k in input
// order, and stops at the first collinear one. Sets of fewer than three
// points are always valid.
func Verify(points []lattice.Point) Verdict {
	m := len(points)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			for k := j + 1; k < m; k++ {
				if Collinear(points[i], points[j], points[k]) {
					return Verdict{Triple: [3]lattice.Point{points[i], points[j], points[k]}}
				}
			}
		}
	}

	return Verdict{Valid: true}
}

// Check is Verify returning an error.
func Check(points []lattice.Point) error {
	return Verify(points).Err()
}

// InGrid checks that every point lies on the n×n board and that no cell
// is listed twice.
func InGrid(n int, points []lattice.Point) error {
	grid, err := lattice.NewGrid(n)
	if err != nil {
		return err
	}
	seen := make(map[lattice.Point]struct{}, len(points))
	for _, p := range points {
		if !grid.Contains(p) {
			return fmt.Errorf("%w: %v on %d×%d", ErrOutOfBounds, p, n, n)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicatePoint, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}
