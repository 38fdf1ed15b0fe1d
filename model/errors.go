package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSolver indicates Solve was called without a solver.
	ErrNilSolver = errors.New("model: solver is nil")
	// ErrBadConstraint indicates a constraint cell outside the board.
	ErrBadConstraint = errors.New("model: constraint references a cell outside the board")
	// ErrShapeMismatch indicates the solver returned the wrong number of values.
	ErrShapeMismatch = errors.New("model: solution size does not match variable count")
	// ErrObjectiveMismatch indicates the reported objective disagrees with the assignment.
	ErrObjectiveMismatch = errors.New("model: reported objective does not match assignment")
	// ErrRowViolated indicates the solver returned an assignment breaking a row.
	ErrRowViolated = errors.New("model: assignment violates a constraint row")
	// ErrNotOptimal is matched by every *StatusError.
	ErrNotOptimal = errors.New("model: solver did not reach an optimal solution")
)

// StatusError reports a non-optimal solver outcome. No points are
// extracted when it is returned.
type StatusError struct {
	Status Status
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("model: solver status %s", e.Status)
}

// Is makes errors.Is(err, ErrNotOptimal) hold.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotOptimal
}
