package bnb_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/nothree/bnb"
	"github.com/katalvlaran/nothree/lattice"
	"github.com/katalvlaran/nothree/lineset"
	"github.com/katalvlaran/nothree/model"
)

// BenchmarkSolve_Eight proves the 8×8 optimum (16) from scratch.
func BenchmarkSolve_Eight(b *testing.B) {
	dirs, _ := lattice.Directions(8)
	cons, _ := lineset.Build(8, dirs, lineset.DefaultOptions())
	p, err := model.Assemble(8, cons)
	if err != nil {
		b.Fatalf("Assemble: %v", err)
	}
	s := bnb.New(bnb.Options{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(context.Background(), p)
	}
}
