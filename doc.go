// Package nothree searches for maximum no-three-in-line point sets: the
// largest set of cells on an n×n board such that no three chosen cells lie
// on one straight line (axis-parallel or at any rational slope).
//
// 🚀 What is nothree?
//
//	A small pipeline that turns the geometric puzzle into a 0/1 program:
//		• Directions: every reduced slope that can hold three cells
//		• Line constraints: one "at most two" row per maximal collinear run
//		• Model: one binary variable per cell, maximize the count
//		• Solvers: gini SAT search or exact branch-and-bound; OPB export
//		• Verification: exhaustive cross-product check of the result
//		• Rendering: PNG file, ASCII board or live terminal view
//
// Packages:
//
//	lattice/  — board coordinates, direction enumeration, gcd reduction
//	lineset/  — collinear runs and their constraints, per-size cache
//	model/    — binary program assembly, Solver interface, decoding
//	pbsolver/ — gini SAT backend, OPB export
//	bnb/      — exact branch-and-bound backend
//	verify/   — O(k³) collinearity check
//	render/   — PNG, text and tcell output
//	config/   — YAML configuration
//	pipeline/ — end-to-end run with logging
//	cmd/nothree — command line front end
//
// Quick ASCII example, an optimal 4×4 board (8 points):
//
//	. X X .
//	X . . X
//	X . . X
//	. X X .
//
// Every row, column and diagonal holds at most two X.
//
//	go install github.com/katalvlaran/nothree/cmd/nothree@latest
package nothree
