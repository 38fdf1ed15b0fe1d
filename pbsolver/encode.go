package pbsolver

import "github.com/katalvlaran/nothree/model"

// row is a presolved Σ x ≤ bound over compact variables 1..k.
type row struct {
	vars  []int
	bound int
}

// encoding is the presolved view of a Problem.
type encoding struct {
	rows  []row
	toVar []int // compact var (1-based) → problem variable; toVar[0] unused
	fixed []bool
}

// encode applies the presolve rules described in the package doc.
func encode(p *model.Problem) encoding {
	vars := p.Vars()
	enc := encoding{
		toVar: []int{-1},
		fixed: make([]bool, vars),
	}
	compact := make([]int, vars)
	for v := range enc.fixed {
		enc.fixed[v] = true
	}

	for _, r := range p.Rows {
		if len(r.Vars) <= r.Bound {
			continue
		}
		lits := make([]int, len(r.Vars))
		for i, v := range r.Vars {
			if enc.fixed[v] {
				enc.fixed[v] = false
				enc.toVar = append(enc.toVar, v)
				compact[v] = len(enc.toVar) - 1
			}
			lits[i] = compact[v]
		}
		enc.rows = append(enc.rows, row{vars: lits, bound: r.Bound})
	}

	return enc
}

// vars returns the number of compact variables.
func (e encoding) vars() int { return len(e.toVar) - 1 }

// seed returns the assignment with every fixed cell selected, and its size.
func (e encoding) seed() ([]bool, int) {
	values := make([]bool, len(e.fixed))
	free := 0
	for v, f := range e.fixed {
		if f {
			values[v] = true
			free++
		}
	}

	return values, free
}
