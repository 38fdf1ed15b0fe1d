package render

import (
	"strings"

	"github.com/katalvlaran/nothree/lattice"
)

// Text renders the board as n lines of n characters:
// 'X' for a selected cell, '.' otherwise. Off-board points are ignored.
func Text(n int, points []lattice.Point) string {
	if n <= 0 {
		return ""
	}
	on := mask(n, points)

	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if on[r*n+c] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// mask flags selected cells by row-major index.
func mask(n int, points []lattice.Point) []bool {
	grid := lattice.Grid{N: n}
	on := make([]bool, grid.Size())
	for _, p := range points {
		if grid.Contains(p) {
			on[grid.Index(p)] = true
		}
	}

	return on
}
