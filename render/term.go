package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/nothree/lattice"
)

const (
	pointRune = '●'
	emptyRune = '·'
)

var (
	pointStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault
)

// Draw paints the board on s in matrix orientation, two columns per cell,
// with a status line under it. It does not call s.Show.
func Draw(s tcell.Screen, n int, points []lattice.Point) {
	s.Clear()
	on := mask(n, points)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if on[r*n+c] {
				s.SetContent(2*c, r, pointRune, nil, pointStyle)
			} else {
				s.SetContent(2*c, r, emptyRune, nil, emptyStyle)
			}
		}
	}
	status := fmt.Sprintf("n=%d points=%d  q/esc: quit", n, len(points))
	for i, ch := range []rune(status) {
		s.SetContent(i, n+1, ch, nil, textStyle)
	}
}

// View opens the terminal, shows the board and returns when q, Esc or
// Ctrl-C is pressed.
func View(n int, points []lattice.Point) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("render: open terminal: %w", err)
	}
	if err = s.Init(); err != nil {
		return fmt.Errorf("render: init terminal: %w", err)
	}
	defer s.Fini()

	loop(s, n, points)

	return nil
}

// loop redraws on resize until a quit key arrives or the screen closes.
func loop(s tcell.Screen, n int, points []lattice.Point) {
	Draw(s, n, points)
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			Draw(s, n, points)
			s.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		}
	}
}
