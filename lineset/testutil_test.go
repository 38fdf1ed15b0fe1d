package lineset_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/nothree/lineset"
)

// bruteForceLines enumerates every maximal set of ≥ minLen collinear
// cells of an n×n board without slopes or gcds: for each pair of cells
// it gathers all cells w with a zero cross product. Keys are the sorted
// row-major indices. O(n⁶); meant for n ≤ 10.
func bruteForceLines(n, minLen int) map[string][]int {
	total := n * n
	lines := make(map[string][]int)
	for u := 0; u < total; u++ {
		ur, uc := u/n, u%n
		for v := u + 1; v < total; v++ {
			vr, vc := v/n, v%n
			var set []int
			for w := 0; w < total; w++ {
				wr, wc := w/n, w%n
				if (vc-uc)*(wr-ur) == (wc-uc)*(vr-ur) {
					set = append(set, w)
				}
			}
			if len(set) < minLen {
				continue
			}
			lines[key(set)] = set
		}
	}

	return lines
}

// constraintSets groups constraints by their sorted cell index set.
func constraintSets(n int, cons []lineset.Constraint) map[string]int {
	out := make(map[string]int, len(cons))
	for _, c := range cons {
		idx := c.Indices(n)
		sort.Ints(idx)
		out[key(idx)]++
	}

	return out
}

func key(idx []int) string {
	return fmt.Sprint(idx)
}
