// Package model assembles the no-three-in-line integer program and maps
// solver output back to board cells.
//
// The program has one binary variable per cell, x[i,j] with flat index
// i·n + j, the objective "maximize Σ x", and one row Σ_{v ∈ run} x[v] ≤ 2
// per line constraint from package lineset.
//
// Solving is delegated to a Solver. Only an Optimal status is decoded;
// every other status is returned as a *StatusError so callers can tell
// "no assignment" apart from a bad one. The decoded assignment is
// re-checked against every row and against the reported objective before
// it is handed out.
//
// Errors:
//
//   - ErrNilSolver, ErrBadConstraint, ErrShapeMismatch,
//     ErrObjectiveMismatch, ErrRowViolated.
//   - *StatusError (matches ErrNotOptimal) for non-optimal statuses.
package model
