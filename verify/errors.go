package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
)

var (
	// ErrCollinear is matched by every *CollinearError.
	ErrCollinear = errors.New("verify: three points are collinear")
	// ErrOutOfBounds indicates a point outside the n×n board.
	ErrOutOfBounds = errors.New("verify: point outside the board")
	// ErrDuplicatePoint indicates the same cell listed twice.
	ErrDuplicatePoint = errors.New("verify: duplicate point")
)

// CollinearError carries the first offending triple found.
type CollinearError struct {
	Triple [3]lattice.Point
}

// Error implements error.
func (e *CollinearError) Error() string {
	return fmt.Sprintf("verify: points %v %v %v are collinear", e.Triple[0], e.Triple[1], e.Triple[2])
}

// Is makes errors.Is(err, ErrCollinear) hold.
func (e *CollinearError) Is(target error) bool {
	return target == ErrCollinear
}
