package model_test

import (
	"context"
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nothree/lattice"
	"github.com/katalvlaran/nothree/lineset"
	"github.com/katalvlaran/nothree/model"
)

// exhaustive solves p by enumerating all 2^(n²) assignments; n ≤ 4.
// Ties keep the lowest bitmask, so results are deterministic.
var exhaustive = model.SolverFunc(func(ctx context.Context, p *model.Problem) (model.Solution, error) {
	vars := p.Vars()
	best, bestCount := uint64(0), -1
	values := make([]bool, vars)
	for mask := uint64(0); mask < 1<<uint(vars); mask++ {
		count := bits.OnesCount64(mask)
		if count <= bestCount {
			continue
		}
		for v := range values {
			values[v] = mask&(1<<uint(v)) != 0
		}
		if _, ok := p.Feasible(values); ok {
			best, bestCount = mask, count
		}
	}
	out := make([]bool, vars)
	for v := range out {
		out[v] = best&(1<<uint(v)) != 0
	}

	return model.Solution{Status: model.Optimal, Values: out, Objective: bestCount}, nil
})

func assemble(t *testing.T, n int) *model.Problem {
	t.Helper()
	dirs, err := lattice.Directions(n)
	require.NoError(t, err)
	cons, err := lineset.Build(n, dirs, lineset.DefaultOptions())
	require.NoError(t, err)
	p, err := model.Assemble(n, cons)
	require.NoError(t, err)

	return p
}

// TestAssemble_Shape checks variables and rows of a 3×3 board.
func TestAssemble_Shape(t *testing.T) {
	p := assemble(t, 3)
	assert.Equal(t, 9, p.Vars())
	assert.Len(t, p.Rows, 8)
	assert.Equal(t, model.Row{Vars: []int{0, 4, 8}, Bound: 2}, p.Rows[0])
	assert.Equal(t, "x[1,2]", p.VarName(5))
}

// TestAssemble_Errors covers bad sizes and off-board runs.
func TestAssemble_Errors(t *testing.T) {
	_, err := model.Assemble(0, nil)
	assert.ErrorIs(t, err, lattice.ErrDegenerateGrid)

	bad := []lineset.Constraint{{
		Run:   lineset.Run{Cells: []lattice.Point{{Row: 0, Col: 0}, {Row: 0, Col: 3}}},
		Bound: 2,
	}}
	_, err = model.Assemble(3, bad)
	assert.ErrorIs(t, err, model.ErrBadConstraint)
}

// TestSolve_EndToEndSmall runs the exhaustive solver on tiny boards.
// Known optima: 1, 4, 6, 8 for n = 1..4.
func TestSolve_EndToEndSmall(t *testing.T) {
	want := map[int]int{1: 1, 2: 4, 3: 6, 4: 8}
	for n := 1; n <= 4; n++ {
		res, err := model.Solve(context.Background(), assemble(t, n), exhaustive)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, model.Optimal, res.Status)
		assert.Equal(t, want[n], res.Objective, "n=%d", n)
		assert.Len(t, res.Points, want[n])
		for _, pt := range res.Points {
			assert.True(t, lattice.Grid{N: n}.Contains(pt))
		}
	}
}

// TestSolve_NonOptimalStatuses surfaces every status without decoding.
func TestSolve_NonOptimalStatuses(t *testing.T) {
	p := assemble(t, 3)
	for _, st := range []model.Status{model.Loaded, model.Infeasible, model.InfeasibleOrUnbounded, model.Unbounded} {
		s := model.SolverFunc(func(context.Context, *model.Problem) (model.Solution, error) {
			return model.Solution{Status: st, Values: make([]bool, 9)}, nil
		})
		res, err := model.Solve(context.Background(), p, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotOptimal)

		var se *model.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, st, se.Status)
		assert.Equal(t, st, res.Status)
		assert.Nil(t, res.Points, "status %s must not decode points", st)
	}
}

// TestSolve_RejectsBadAssignments checks the post-solve sanity checks.
func TestSolve_RejectsBadAssignments(t *testing.T) {
	p := assemble(t, 3)
	ctx := context.Background()

	_, err := model.Solve(ctx, p, nil)
	assert.ErrorIs(t, err, model.ErrNilSolver)

	short := model.SolverFunc(func(context.Context, *model.Problem) (model.Solution, error) {
		return model.Solution{Status: model.Optimal, Values: make([]bool, 4)}, nil
	})
	_, err = model.Solve(ctx, p, short)
	assert.ErrorIs(t, err, model.ErrShapeMismatch)

	full := model.SolverFunc(func(context.Context, *model.Problem) (model.Solution, error) {
		v := make([]bool, 9)
		for i := range v {
			v[i] = true
		}
		return model.Solution{Status: model.Optimal, Values: v, Objective: 9}, nil
	})
	_, err = model.Solve(ctx, p, full)
	assert.ErrorIs(t, err, model.ErrRowViolated)

	lying := model.SolverFunc(func(context.Context, *model.Problem) (model.Solution, error) {
		v := make([]bool, 9)
		v[0] = true
		return model.Solution{Status: model.Optimal, Values: v, Objective: 5}, nil
	})
	_, err = model.Solve(ctx, p, lying)
	assert.ErrorIs(t, err, model.ErrObjectiveMismatch)

	boom := errors.New("boom")
	failing := model.SolverFunc(func(context.Context, *model.Problem) (model.Solution, error) {
		return model.Solution{Status: model.Loaded}, boom
	})
	res, err := model.Solve(ctx, p, failing)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, model.Loaded, res.Status)
}

// TestDecode maps flat indices back to (idx / n, idx % n).
func TestDecode(t *testing.T) {
	values := []bool{false, true, false, false, false, false, true, false, true}
	assert.Equal(t, []lattice.Point{{Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, model.Decode(3, values))
	assert.Nil(t, model.Decode(3, make([]bool, 9)))
}

// TestDescribe renders one line per variable.
func TestDescribe(t *testing.T) {
	p := &model.Problem{N: 2}
	got := p.Describe([]bool{true, false, false, true})
	assert.Equal(t, []string{"x[0,0] = 1", "x[0,1] = 0", "x[1,0] = 0", "x[1,1] = 1"}, got)
}

// TestStatus_String pins the status names.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "LOADED", model.Loaded.String())
	assert.Equal(t, "OPTIMAL", model.Optimal.String())
	assert.Equal(t, "INFEASIBLE", model.Infeasible.String())
	assert.Equal(t, "INF_OR_UNBD", model.InfeasibleOrUnbounded.String())
	assert.Equal(t, "UNBOUNDED", model.Unbounded.String())
	assert.Equal(t, "Status(9)", model.Status(9).String())
}

// TestPartition checks the bound on full boards (two per row) and on a
// hand-made problem where classes compete.
func TestPartition(t *testing.T) {
	for n := 3; n <= 8; n++ {
		rows, ub := assemble(t, n).Partition()
		assert.Equal(t, 2*n, ub, "n=%d", n)
		assert.Len(t, rows, n, "n=%d", n)
	}

	p := &model.Problem{N: 3, Rows: []model.Row{
		{Vars: []int{0, 4, 8}, Bound: 2},
		{Vars: []int{0, 1, 2}, Bound: 1},
		{Vars: []int{1, 2}, Bound: 1}, // overlaps the row above
	}}
	rows, ub := p.Partition()
	assert.Equal(t, []int{1}, rows)
	assert.Equal(t, 1+6, ub)

	rows, ub = (&model.Problem{N: 2}).Partition()
	assert.Nil(t, rows)
	assert.Equal(t, 4, ub)

	// The bound holds for the exhaustive optimum.
	for n := 1; n <= 4; n++ {
		p := assemble(t, n)
		sol, err := exhaustive.Solve(context.Background(), p)
		require.NoError(t, err)
		_, ub := p.Partition()
		assert.LessOrEqual(t, sol.Objective, ub, "n=%d", n)
	}
}
