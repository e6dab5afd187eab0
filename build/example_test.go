package build_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshgraph/build"
	"github.com/katalvlaran/meshgraph/geom"
)

// ExampleCycle lays a ring out on the unit circle and measures one chord.
func ExampleCycle() {
	const n = 6
	g, err := build.Cycle[string, float64](n, build.WithPositions(func(i int) geom.Vec {
		angle := 2 * math.Pi * float64(i) / n
		return geom.V(math.Cos(angle), math.Sin(angle), 0)
	}))
	if err != nil {
		panic(err)
	}

	e, _ := g.Edge(0)
	fmt.Println("nodes:", g.NumNodes(), "edges:", g.NumEdges())
	fmt.Printf("side length: %.2f\n", e.Length())

	// Output:
	// nodes: 6 edges: 6
	// side length: 1.00
}

// ExampleGrid2D builds a small lattice and reports a corner degree.
func ExampleGrid2D() {
	g, err := build.Grid2D[int, int](2, 3)
	if err != nil {
		panic(err)
	}

	corner, _ := g.Node(0)
	fmt.Println("nodes:", g.NumNodes(), "edges:", g.NumEdges(), "corner degree:", corner.Degree())

	// Output:
	// nodes: 6 edges: 7 corner degree: 2
}
