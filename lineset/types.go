package lineset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nothree/lattice"
)

// Mode selects which rays become constraints.
type Mode int

const (
	// MaximalRuns emits one constraint per maximal run.
	MaximalRuns Mode = iota
	// Rays emits one constraint per anchor, direction and sign.
	Rays
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case MaximalRuns:
		return "maximal"
	case Rays:
		return "rays"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "maximal" or "rays" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maximal", "":
		return MaximalRuns, nil
	case "rays":
		return Rays, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// DefaultBound is the no-three-in-line limit per run.
const DefaultBound = 2

// DefaultMinRunLength skips runs on which DefaultBound cannot bind.
const DefaultMinRunLength = DefaultBound + 1

// Options configures Build.
//
// Fields:
//   - Mode         — MaximalRuns or Rays.
//   - MinRunLength — runs with fewer cells are skipped; 1 keeps everything.
//     At most Bound+1, so every run the bound can cut stays constrained.
//   - Bound        — upper bound on selected cells per run.
type Options struct {
	Mode         Mode
	MinRunLength int
	Bound        int
}

// DefaultOptions returns MaximalRuns, MinRunLength 3, Bound 2.
func DefaultOptions() Options {
	return Options{
		Mode:         MaximalRuns,
		MinRunLength: DefaultMinRunLength,
		Bound:        DefaultBound,
	}
}

// Validate checks o for out-of-range values.
func (o Options) Validate() error {
	if o.Mode != MaximalRuns && o.Mode != Rays {
		return ErrUnknownMode
	}
	if o.Bound < 0 {
		return ErrBadBound
	}
	if o.MinRunLength < 1 || o.MinRunLength > o.Bound+1 {
		return ErrBadMinRun
	}

	return nil
}

// Run is the set of cells visited from Anchor by repeated Step moves.
// Cells[0] == Anchor; cells are in walk order.
type Run struct {
	Anchor lattice.Point
	Step   lattice.Direction
	Cells  []lattice.Point
}

// Len returns the number of cells on r.
func (r Run) Len() int { return len(r.Cells) }

// Constraint bounds the number of selected cells on Run by Bound.
type Constraint struct {
	Run   Run
	Bound int
}

// Indices returns the row-major variable indices of c's cells on an n×n board.
func (c Constraint) Indices(n int) []int {
	out := make([]int, len(c.Run.Cells))
	for i, p := range c.Run.Cells {
		out[i] = p.Row*n + p.Col
	}

	return out
}

// String renders c as "sum{(r,c) ...} <= bound".
func (c Constraint) String() string {
	var sb strings.Builder
	sb.WriteString("sum{")
	for i, p := range c.Run.Cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	fmt.Fprintf(&sb, "} <= %d", c.Bound)

	return sb.String()
}
