package model

import "sort"

// Partition returns pairwise disjoint rows of one parallel class and the
// upper bound on the objective they prove:
//
//	UB = Σ_kept min(Bound, |Vars|) + (cells in no kept row)
//
// Rows are grouped by the flat-index stride between their first two
// cells. Inside a class rows are taken longest first, skipping any row
// that shares a cell with one already taken. The class with the smallest
// UB wins; with no usable rows UB is Vars().
//
// Any assignment that satisfies the rows selects at most UB cells.
func (p *Problem) Partition() (rows []int, ub int) {
	vars := p.Vars()
	classes := make(map[int][]int)
	var strides []int
	for i, r := range p.Rows {
		if len(r.Vars) < 2 {
			continue
		}
		d := r.Vars[1] - r.Vars[0]
		if _, ok := classes[d]; !ok {
			strides = append(strides, d)
		}
		classes[d] = append(classes[d], i)
	}

	ub = vars
	for _, d := range strides {
		class := classes[d]
		sort.SliceStable(class, func(a, b int) bool {
			return len(p.Rows[class[a]].Vars) > len(p.Rows[class[b]].Vars)
		})

		covered := make(map[int]bool)
		var kept []int
		bound := 0
	next:
		for _, ri := range class {
			r := p.Rows[ri]
			for _, v := range r.Vars {
				if covered[v] {
					continue next
				}
			}
			for _, v := range r.Vars {
				covered[v] = true
			}
			kept = append(kept, ri)
			bound += max(0, min(r.Bound, len(r.Vars)))
		}
		bound += vars - len(covered)
		if bound < ub || rows == nil && bound == ub {
			ub, rows = bound, kept
		}
	}

	return rows, ub
}
