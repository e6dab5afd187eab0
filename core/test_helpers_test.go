// Package core_test contains shared fixtures and assertion helpers for
// meshgraph/core. The invariant checker below is run after mutations all
// over the suite; it validates the container's structural contract
// through the public API only.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgraph/core"
	"github.com/katalvlaran/meshgraph/geom"
)

// pair is an unordered node-id pair used to compare edge sets.
type pair struct{ lo, hi int }

// pairOf normalizes an edge's endpoint ids into a pair.
func pairOf[V, E any](e core.Edge[V, E]) pair {
	a, b := e.Node1().Index(), e.Node2().Index()
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

// edgeSet collects every edge yielded by the EdgeIterator as unordered
// pairs, failing the test on any duplicate.
func edgeSet[V, E any](t *testing.T, g *core.Graph[V, E]) map[pair]bool {
	t.Helper()
	set := make(map[pair]bool, g.NumEdges())
	for e := range g.AllEdges() {
		p := pairOf(e)
		require.False(t, set[p], "edge %v yielded twice", p)
		set[p] = true
	}

	return set
}

// checkInvariants validates the structural contract:
//   - every half-edge targets a live node distinct from its home node
//   - no parallel half-edges leave any node
//   - every half-edge has a reciprocal at the far endpoint
//   - the edge count equals half the degree sum
//   - the EdgeIterator yields exactly NumEdges distinct pairs
func checkInvariants[V, E any](t *testing.T, g *core.Graph[V, E]) {
	t.Helper()

	degSum := 0
	for n := range g.Nodes() {
		deg := n.Degree()
		degSum += deg
		seen := make(map[int]bool, deg)
		for e := range n.Incident() {
			require.True(t, e.Node1().Equal(n), "incident edge must be keyed on its center")
			n2 := e.Node2()
			require.True(t, g.HasNode(n2), "half-edge targets a dead node")
			require.NotEqual(t, n.Index(), n2.Index(), "self-loop stored")
			require.False(t, seen[n2.Index()], "parallel half-edge stored")
			seen[n2.Index()] = true

			d, ok := e.Dual()
			require.True(t, ok, "reciprocal half-edge missing")
			require.True(t, d.Node1().Equal(n2))
			require.True(t, d.Node2().Equal(n))
			require.True(t, d.Equal(e), "dual must reference the same undirected edge")
		}
	}
	require.Zero(t, degSum%2, "degree sum must be even")
	require.Equal(t, degSum/2, g.NumEdges(), "cached edge count out of sync with degrees")
	require.Len(t, edgeSet(t, g), g.NumEdges())
}

// triangle builds three labeled nodes at distinct positions with all
// three edges, the fixture behind most removal tests.
func triangle(t *testing.T) (*core.Graph[string, float64], [3]core.Node[string, float64]) {
	t.Helper()
	g := core.NewGraph[string, float64]()
	var ns [3]core.Node[string, float64]
	labels := [3]string{"a", "b", "c"}
	for i := range ns {
		ns[i] = g.AddNodeWithValue(geom.V(float64(i), 0, 0), labels[i])
	}
	for i := range ns {
		_, err := g.AddEdge(ns[i], ns[(i+1)%3])
		require.NoError(t, err)
	}
	checkInvariants(t, g)

	return g, ns
}
