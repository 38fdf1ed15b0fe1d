// Package lattice describes the square board of the no-three-in-line
// problem and the line directions that can cross it.
//
// What:
//
//   - Grid wraps the board side length n and maps cells to row-major
//     variable indices and back.
//   - Point is a (row, col) cell; Direction is a reduced integer step (di, dj).
//   - Directions enumerates one representative per distinct slope, using
//     exact gcd normalization as the deduplication key.
//
// Why:
//
//   - Every maximal collinear run on the board is generated from one
//     Direction; a missing direction leaves a family of lines
//     unconstrained, a duplicated one only adds redundant work.
//
// Pruning:
//
//	Directions drops (i, j) when i/j > n/2 or j/i > n/2. A reduced step
//	(p, q) fits three in-bounds cells only when 2p ≤ n−1 and 2q ≤ n−1,
//	so its ratio is at most (n−1)/2 < n/2 and it always survives the
//	filter. The filter removes only directions with runs of length ≤ 2.
//
// Complexity:
//
//   - Directions: O(n² · log n) time, O(n²) memory.
//   - Grid methods: O(1), except Cells which is O(n²).
//
// Errors:
//
//   - ErrDegenerateGrid: n ≤ 0.
//   - ErrZeroDirection: Reduce called with (0, 0).
package lattice
