package pbsolver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/nothree/model"
)

// WriteOPB writes p in the OPB pseudo-boolean format read by gophersat
// and other PB solvers. Variable x<v+1> is cell v = i·n+j; the objective
// minimizes the number of unselected cells. Rows that always hold are
// left out.
func WriteOPB(w io.Writer, p *model.Problem) error {
	var cons []solver.PBConstr
	for _, r := range p.Rows {
		if len(r.Vars) <= r.Bound {
			continue
		}
		lits := make([]int, len(r.Vars))
		for i, v := range r.Vars {
			lits[i] = v + 1
		}
		cons = append(cons, solver.AtMost(lits, r.Bound))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "* #variable= %d #constraint= %d\n", p.Vars(), len(cons))
	fmt.Fprintf(bw, "* no-three-in-line n=%d, x<i*%d+j+1> selects cell (i,j)\n", p.N, p.N)
	bw.WriteString("min:")
	for v := 1; v <= p.Vars(); v++ {
		fmt.Fprintf(bw, " +1 ~x%d", v)
	}
	bw.WriteString(" ;\n")
	for _, c := range cons {
		writeConstr(bw, c)
	}

	return bw.Flush()
}

// writeConstr writes "Σ w·lit >= AtLeast ;".
func writeConstr(w *bufio.Writer, c solver.PBConstr) {
	for i, lit := range c.Lits {
		weight := 1
		if c.Weights != nil {
			weight = c.Weights[i]
		}
		neg := ""
		if lit < 0 {
			neg, lit = "~", -lit
		}
		fmt.Fprintf(w, "%+d %sx%d ", weight, neg, lit)
	}
	fmt.Fprintf(w, ">= %d ;\n", c.AtLeast)
}
