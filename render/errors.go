package render

import "errors"

var (
	// ErrBadCellSize indicates a non-positive pixel size per cell.
	ErrBadCellSize = errors.New("render: cell size must be positive")
	// ErrPointOutside indicates a point off the n×n board.
	ErrPointOutside = errors.New("render: point outside the board")
)
