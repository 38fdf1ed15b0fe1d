package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/nothree/lattice"
)

// ExampleDirections lists the orientations a 5×5 board needs.
// (1,2) survives the n/2 filter; (1,3) does not (3 > 5/2), and (2,4)
// collapses onto (1,2).
func ExampleDirections() {
	dirs, _ := lattice.Directions(5)
	for _, d := range dirs {
		fmt.Print(d, " ")
	}
	fmt.Println()
	// Output:
	// (1,1) (1,2) (2,1) (2,3) (3,2) (3,4) (4,3) (0,1) (1,0)
}

// ExampleGrid_Point decodes a flat variable index.
func ExampleGrid_Point() {
	g, _ := lattice.NewGrid(8)
	fmt.Println(g.Point(19), g.Index(lattice.Point{Row: 2, Col: 3}))
	// Output:
	// (2,3) 19
}
