// Package pbsolver implements model.Solver on top of the gini SAT solver,
// and writes problems in the OPB format through gophersat's constraint
// constructors.
//
// Presolve:
//
//   - Rows whose size does not exceed their bound always hold and are dropped.
//   - Cells that appear in no remaining row are fixed to 1: they cannot
//     break anything and each one adds to the objective.
//   - The other cells are renumbered 1..k.
//
// Coding: every row becomes a sorting network (logic.CardSort) whose
// "at most bound" output is a unit clause. One more network counts all k
// cells; "at least m cells" is a single assumption on its outputs, so the
// search raises m without rebuilding the solver.
//
// Search: assume one more cell than the incumbent and solve; repeat until
// a round is unsatisfiable or the incumbent meets the parallel-class bound
// of model.Problem.Partition, which proves it optimal without a refutation.
// Each round runs under gini's GoSolve and is stopped through the
// returned handle as soon as the context ends, so no search outlives
// Solve.
package pbsolver
