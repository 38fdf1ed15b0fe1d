package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nothree/lattice"
)

// TestImage_Layout checks size, grid lines and the plot orientation:
// (r, c) lands at x = r, y = c counted from the bottom.
func TestImage_Layout(t *testing.T) {
	img, err := Image(3, []lattice.Point{{Row: 2, Col: 0}}, 10)
	require.NoError(t, err)
	assert.Equal(t, 31, img.Bounds().Dx())
	assert.Equal(t, 31, img.Bounds().Dy())

	assert.Equal(t, gridColor, img.RGBAAt(0, 5))
	assert.Equal(t, gridColor, img.RGBAAt(30, 30))

	// (2,0): x in [20,30), y in [20,30) from the top.
	assert.Equal(t, pointColor, img.RGBAAt(25, 25))
	assert.Equal(t, boardColor, img.RGBAAt(5, 25))
	assert.Equal(t, boardColor, img.RGBAAt(25, 5))
}

// TestImage_Errors covers every rejection.
func TestImage_Errors(t *testing.T) {
	_, err := Image(0, nil, 10)
	assert.ErrorIs(t, err, lattice.ErrDegenerateGrid)
	_, err = Image(3, nil, 0)
	assert.ErrorIs(t, err, ErrBadCellSize)
	_, err = Image(3, []lattice.Point{{Row: 3, Col: 0}}, 10)
	assert.ErrorIs(t, err, ErrPointOutside)
}

// TestWritePNG round-trips through the PNG decoder.
func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, 2, []lattice.Point{{Row: 0, Col: 1}}, 4))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 9, img.Bounds().Dx())
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff})
}

// TestFileRenderer writes n_<n>.png into the target directory.
func TestFileRenderer(t *testing.T) {
	dir := t.TempDir()
	path, err := FileRenderer{Dir: dir}.Render(4, []lattice.Point{{Row: 1, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "n_4.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = FileRenderer{Dir: filepath.Join(dir, "missing")}.Render(4, nil)
	assert.Error(t, err)
}

// TestText renders matrix orientation.
func TestText(t *testing.T) {
	got := Text(3, []lattice.Point{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 5, Col: 5}})
	assert.Equal(t, "X..\n..X\n...\n", got)
	assert.Equal(t, "", Text(0, nil))
}

// TestDraw paints onto a simulation screen.
func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(30, 10)

	Draw(s, 3, []lattice.Point{{Row: 1, Col: 2}})
	s.Show()

	cells, w, _ := s.GetContents()
	at := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	assert.Equal(t, pointRune, at(4, 1))
	assert.Equal(t, emptyRune, at(0, 0))
	assert.Equal(t, 'n', at(0, 4))
}

// TestLoop_QuitKey exits on 'q' after the first frame.
func TestLoop_QuitKey(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 8)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	loop(s, 2, nil)

	cells, _, _ := s.GetContents()
	require.NotEmpty(t, cells[0].Runes)
	assert.Equal(t, emptyRune, cells[0].Runes[0])
}
