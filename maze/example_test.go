// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors demonstrates the fixed neighbor order.
// Scenario:
//
//   - 3×3 maze, query the center cell.
//   - Neighbors come back up, down, left, right; walls are not filtered.
func ExampleGrid_Neighbors() {
	g, _ := maze.Parse([]string{
		"O# ",
		"   ",
		"#X ",
	})
	for _, n := range g.Neighbors(maze.Cell{Row: 1, Col: 1}) {
		k, _ := g.CellKind(n)
		fmt.Println(n, k)
	}
	// Output:
	// (0,1) wall
	// (2,1) end
	// (1,0) open
	// (1,2) open
}

////////////////////////////////////////////////////////////////////////////////
// Example: Endpoints
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Endpoints locates Start and End on the built-in maze.
func ExampleGrid_Endpoints() {
	start, end, err := maze.Default().Endpoints()
	fmt.Println(start, end, err)
	// Output:
	// (0,4) (8,7) <nil>
}
