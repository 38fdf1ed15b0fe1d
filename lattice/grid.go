package lattice

// InBounds reports whether (row, col) lies on the board.
// Each axis is tested independently: 0 ≤ row < N and 0 ≤ col < N.
// Complexity: O(1).
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return g.InBounds(p.Row, p.Col)
}

// Size returns the number of cells, n².
func (g Grid) Size() int {
	return g.N * g.N
}

// Index converts p to its row-major variable index row*N + col.
// Complexity: O(1).
func (g Grid) Index(p Point) int {
	return p.Row*g.N + p.Col
}

// Point converts a row-major index back to (idx / N, idx % N).
// Complexity: O(1).
func (g Grid) Point(idx int) Point {
	return Point{Row: idx / g.N, Col: idx % g.N}
}

// Cells lists every board cell in row-major order.
// Complexity: O(n²) time and memory.
func (g Grid) Cells() []Point {
	out := make([]Point, 0, g.Size())
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			out = append(out, Point{Row: r, Col: c})
		}
	}

	return out
}
