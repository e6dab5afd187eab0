package core_test

import (
	"fmt"

	"github.com/katalvlaran/meshgraph/core"
	"github.com/katalvlaran/meshgraph/geom"
)

// ExampleGraph demonstrates building a small mesh, traversing it, and
// reading edge lengths through handles.
func ExampleGraph() {
	// A unit square with one diagonal.
	g := core.NewGraph[string, float64]()
	n0 := g.AddNodeWithValue(geom.V(0, 0, 0), "sw")
	n1 := g.AddNodeWithValue(geom.V(1, 0, 0), "se")
	n2 := g.AddNodeWithValue(geom.V(1, 1, 0), "ne")
	n3 := g.AddNodeWithValue(geom.V(0, 1, 0), "nw")

	for _, p := range [][2]core.Node[string, float64]{
		{n0, n1}, {n1, n2}, {n2, n3}, {n3, n0}, {n0, n2},
	} {
		g.AddEdge(p[0], p[1])
	}

	fmt.Println("nodes:", g.NumNodes(), "edges:", g.NumEdges())
	for e := range g.AllEdges() {
		fmt.Printf("%s-%s length %.2f\n",
			e.Node1().Value(), e.Node2().Value(), e.Length())
	}

	// Output:
	// nodes: 4 edges: 5
	// sw-se length 1.00
	// sw-nw length 1.00
	// sw-ne length 1.41
	// se-ne length 1.00
	// ne-nw length 1.00
}

// ExampleGraph_removeNode shows the swap-and-pop id reuse: after a
// removal the last node is reachable under the freed id.
func ExampleGraph_removeNode() {
	g := core.NewGraph[string, int]()
	g.AddNodeWithValue(geom.Vec{}, "first")
	victim := g.AddNodeWithValue(geom.Vec{}, "second")
	g.AddNodeWithValue(geom.Vec{}, "third")

	g.RemoveNode(victim)

	for n := range g.Nodes() {
		fmt.Println(n.Index(), n.Value())
	}

	// Output:
	// 0 first
	// 1 third
}
