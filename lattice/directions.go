package lattice

// Directions enumerates the line orientations of an n×n board.
//
// Algorithm:
//  1. For i = 1..n−1, for j = 1..n−1:
//     skip (i, j) when 2i > n·j or 2j > n·i (slope magnitude above n/2);
//     reduce (i, j) by gcd and skip it if that reduced slope was seen.
//  2. Append the axis directions (0,1) and (1,0).
//
// The first pair met for a slope class is already reduced, since i runs
// upward in the outer loop, so the output holds only coprime pairs.
// Negative slopes are not listed; the builder walks the Mirror of each
// direction instead.
//
// For n ≤ 2 the double loop yields nothing usable and the result is the
// two axis directions alone.
//
// Returns ErrDegenerateGrid if n ≤ 0.
//
// Complexity: O(n² · log n) time, O(n²) memory.
func Directions(n int) ([]Direction, error) {
	if n <= 0 {
		return nil, ErrDegenerateGrid
	}

	var (
		out  []Direction
		seen = make(map[Direction]struct{})
		i, j int
	)
	for i = 1; i < n; i++ {
		for j = 1; j < n; j++ {
			// Integer form of i/j > n/2 || j/i > n/2.
			if 2*i > n*j || 2*j > n*i {
				continue
			}
			key := reduce(i, j)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	out = append(out, Direction{DI: 0, DJ: 1}, Direction{DI: 1, DJ: 0})

	return out, nil
}

// Reduce divides (di, dj) by gcd(|di|, |dj|), keeping the signs.
// Returns ErrZeroDirection for (0, 0).
func Reduce(di, dj int) (Direction, error) {
	if di == 0 && dj == 0 {
		return Direction{}, ErrZeroDirection
	}

	return reduce(di, dj), nil
}

func reduce(di, dj int) Direction {
	g := gcd(abs(di), abs(dj))

	return Direction{DI: di / g, DJ: dj / g}
}

// gcd is Euclid's algorithm on non-negative inputs, not both zero.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
