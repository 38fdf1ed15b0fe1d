package lineset

import (
	"sync"

	"github.com/katalvlaran/nothree/lattice"
)

// Model is the precomputed direction and constraint set of one board size.
// Slices are shared between callers and must not be modified.
type Model struct {
	N           int
	Directions  []lattice.Direction
	Constraints []Constraint
}

// Cache memoizes Build per board size for a fixed Options value.
// Directions and constraints depend only on n, so an entry never goes stale.
// Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	opts    Options
	entries map[int]*Model
}

// NewCache returns an empty cache; opts is validated on first use.
func NewCache(opts Options) *Cache {
	return &Cache{opts: opts, entries: make(map[int]*Model)}
}

// Options returns the build options of c.
func (c *Cache) Options() Options { return c.opts }

// Get returns the model for n, building it on first request.
// Errors are not cached.
func (c *Cache) Get(n int) (*Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.entries[n]; ok {
		return m, nil
	}
	dirs, err := lattice.Directions(n)
	if err != nil {
		return nil, err
	}
	cons, err := Build(n, dirs, c.opts)
	if err != nil {
		return nil, err
	}
	m := &Model{N: n, Directions: dirs, Constraints: cons}
	c.entries[n] = m

	return m, nil
}

// Len returns the number of cached board sizes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
