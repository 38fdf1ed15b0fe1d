package lineset

import "errors"

var (
	// ErrUnknownMode indicates a Mode value outside MaximalRuns/Rays.
	ErrUnknownMode = errors.New("lineset: unknown build mode")
	// ErrBadMinRun indicates Options.MinRunLength outside [1, Bound+1].
	ErrBadMinRun = errors.New("lineset: minimum run length must be between 1 and bound+1")
	// ErrBadBound indicates a negative per-line bound.
	ErrBadBound = errors.New("lineset: line bound must be non-negative")
	// ErrZeroStep indicates a (0,0) entry in the direction set.
	ErrZeroStep = errors.New("lineset: direction set contains a zero step")
	// ErrNotReduced indicates a step whose components share a factor.
	ErrNotReduced = errors.New("lineset: direction is not reduced")
)
