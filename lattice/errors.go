package lattice

import "errors"

var (
	// ErrDegenerateGrid indicates a board side length n ≤ 0.
	ErrDegenerateGrid = errors.New("lattice: grid size must be positive")
	// ErrZeroDirection indicates a (0,0) step, which has no slope.
	ErrZeroDirection = errors.New("lattice: direction must not be (0,0)")
)
