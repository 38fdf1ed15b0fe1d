// Package lineset turns board directions into "at most two selected cells
// per line" constraints.
//
// For every anchor cell (a, b) and every direction (di, dj) two rays are
// walked:
//
//	forward  {(a + di·k, b + dj·k) : k ≥ 0, in bounds}
//	mirrored {(a − di·k, b + dj·k) : k ≥ 0, in bounds}
//
// The mirrored ray covers the negative slope of the same orientation.
// The (·, −dj) rays are never walked: a leftward ray from one anchor is
// the rightward ray of the cell at its far end. Axis directions skip the
// mirror, which would repeat the same row or column.
//
// Modes:
//
//   - MaximalRuns (default): keep a ray only when its anchor is the first
//     cell of its line, deduplicated by endpoints. Every maximal run of
//     MinRunLength or more cells gets exactly one constraint.
//   - Rays: keep every ray, as the plain anchor × direction sweep does.
//     Sub-rays add implied, redundant constraints; the feasible region
//     is the same.
//
// Runs shorter than MinRunLength (default 3) are dropped: a bound of two
// on fewer than three cells always holds.
//
// Complexity: Build is O(n² · |dirs| · n) time; output size is
// O(n² · |dirs|) constraints in Rays mode and O(n · |dirs|) in
// MaximalRuns mode.
package lineset
