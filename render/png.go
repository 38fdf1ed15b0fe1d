package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/nothree/lattice"
)

// DefaultCellSize is the pixel edge of one board cell.
const DefaultCellSize = 32

var (
	gridColor   = color.RGBA{A: 0xff}
	pointColor  = color.RGBA{B: 0xff, A: 0xff}
	boardColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pngEncoding = png.Encoder{CompressionLevel: png.BestCompression}
)

// Image rasterizes the board: (n·cell + 1)² pixels, 1-px grid lines.
// Errors: lattice.ErrDegenerateGrid, ErrBadCellSize, ErrPointOutside.
func Image(n int, points []lattice.Point, cell int) (*image.RGBA, error) {
	grid, err := lattice.NewGrid(n)
	if err != nil {
		return nil, err
	}
	if cell < 1 {
		return nil, ErrBadCellSize
	}

	side := n*cell + 1
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: boardColor}, image.Point{}, draw.Src)

	for _, p := range points {
		if !grid.Contains(p) {
			return nil, fmt.Errorf("%w: %v", ErrPointOutside, p)
		}
		x0 := p.Row * cell
		y0 := (n - 1 - p.Col) * cell
		r := image.Rect(x0, y0, x0+cell, y0+cell)
		draw.Draw(img, r, &image.Uniform{C: pointColor}, image.Point{}, draw.Src)
	}

	for k := 0; k <= n; k++ {
		at := k * cell
		for t := 0; t < side; t++ {
			img.SetRGBA(at, t, gridColor)
			img.SetRGBA(t, at, gridColor)
		}
	}

	return img, nil
}

// WritePNG encodes the board image to w.
func WritePNG(w io.Writer, n int, points []lattice.Point, cell int) error {
	img, err := Image(n, points, cell)
	if err != nil {
		return err
	}

	return pngEncoding.Encode(w, img)
}

// FileName returns the artifact name for board size n.
func FileName(n int) string {
	return fmt.Sprintf("n_%d.png", n)
}

// FileRenderer writes n_<n>.png into Dir.
type FileRenderer struct {
	Dir  string
	Cell int
}

// Render writes the PNG and returns its path.
// A zero Cell uses DefaultCellSize; an empty Dir means the working directory.
func (f FileRenderer) Render(n int, points []lattice.Point) (path string, err error) {
	cell := f.Cell
	if cell == 0 {
		cell = DefaultCellSize
	}
	img, err := Image(n, points, cell)
	if err != nil {
		return "", err
	}

	path = filepath.Join(f.Dir, FileName(n))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	if err = pngEncoding.Encode(file, img); err != nil {
		return "", fmt.Errorf("render: encode %s: %w", path, err)
	}

	return path, nil
}
