// Package verify checks a selected point set for collinear triples.
//
// The check is combinatorial: every unordered triple is tested with the
// integer cross-product identity
//
//	(y2 − y1)(x3 − x1) == (y3 − y1)(x2 − x1)
//
// It shares nothing with the direction enumeration or the solver, so it
// catches a missing or malformed line constraint.
//
// Complexity: Verify is O(m³) for m points; InGrid is O(m).
package verify
