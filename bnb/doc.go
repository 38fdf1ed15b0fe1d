// Package bnb is an exact, dependency-free model.Solver: a depth-first
// Branch-and-Bound over the binary cell variables.
//
// Rationale (succinct):
//  1. Variables are decided in index order; "select" is tried before
//     "skip" and is only allowed while every row through the cell has
//     capacity left, so every leaf is feasible.
//  2. Upper bound (admissible): the disjoint rows of model.Problem.Partition
//     (one parallel class, longest rows first) give
//     UB = selected + Σ_rows min(capacity left, undecided cells)
//     + undecided cells outside the class. Prune when UB ≤ incumbent.
//     On an n×n board this is the "two per row" bound 2n.
//  3. The incumbent is seeded greedily before the search.
//  4. Deadline and context checks run every 4096 node events.
//
// Complexity: exponential in the worst case; memory O(vars + Σ row sizes).
package bnb
