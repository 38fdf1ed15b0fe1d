// Package render draws a board and its selected cells.
//
// Outputs:
//
//   - WritePNG / FileRenderer: a PNG with grid lines and one filled square
//     per selected cell, saved as n_<n>.png. Cell (r, c) is drawn at
//     x = r, y = c with y growing upward, the usual plot orientation.
//   - Text: an ASCII board in matrix orientation (row r is line r).
//   - Draw / View: the same board on a tcell terminal screen.
//
// Rendering is a consumer of verified points; it never feeds back into
// the model.
package render
