package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshgraph/build"
	"github.com/katalvlaran/meshgraph/core"
	"github.com/katalvlaran/meshgraph/geom"
)

// checkConsistent validates the degree-sum identity on a built graph.
func checkConsistent[V, E any](t *testing.T, g *core.Graph[V, E]) {
	t.Helper()
	degSum := 0
	for n := range g.Nodes() {
		degSum += n.Degree()
	}
	require.Equal(t, 2*g.NumEdges(), degSum)
}

func TestTopologyCounts(t *testing.T) {
	cases := []struct {
		name      string
		construct func() (*core.Graph[int, int], error)
		nodes     int
		edges     int
	}{
		{"Path2", func() (*core.Graph[int, int], error) { return build.Path[int, int](2) }, 2, 1},
		{"Path7", func() (*core.Graph[int, int], error) { return build.Path[int, int](7) }, 7, 6},
		{"Cycle3", func() (*core.Graph[int, int], error) { return build.Cycle[int, int](3) }, 3, 3},
		{"Cycle10", func() (*core.Graph[int, int], error) { return build.Cycle[int, int](10) }, 10, 10},
		{"Complete5", func() (*core.Graph[int, int], error) { return build.Complete[int, int](5) }, 5, 10},
		{"Star6", func() (*core.Graph[int, int], error) { return build.Star[int, int](6) }, 7, 6},
		{"Grid3x4", func() (*core.Graph[int, int], error) { return build.Grid2D[int, int](3, 4) }, 12, 17},
		{"Grid1x5", func() (*core.Graph[int, int], error) { return build.Grid2D[int, int](1, 5) }, 5, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.construct()
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NumNodes())
			assert.Equal(t, tc.edges, g.NumEdges())
			checkConsistent(t, g)
		})
	}
}

func TestConstructorErrors(t *testing.T) {
	_, err := build.Path[int, int](1)
	assert.ErrorIs(t, err, build.ErrTooFewNodes)

	_, err = build.Cycle[int, int](2)
	assert.ErrorIs(t, err, build.ErrTooFewNodes)

	_, err = build.Complete[int, int](1)
	assert.ErrorIs(t, err, build.ErrTooFewNodes)

	_, err = build.Star[int, int](0)
	assert.ErrorIs(t, err, build.ErrTooFewNodes)

	_, err = build.Grid2D[int, int](0, 3)
	assert.ErrorIs(t, err, build.ErrBadDimensions)
	_, err = build.Grid2D[int, int](3, 0)
	assert.ErrorIs(t, err, build.ErrBadDimensions)
}

func TestStarDegrees(t *testing.T) {
	g, err := build.Star[int, int](5)
	require.NoError(t, err)

	hub, err := g.Node(0)
	require.NoError(t, err)
	assert.Equal(t, 5, hub.Degree())
	for i := 1; i <= 5; i++ {
		leaf, err := g.Node(i)
		require.NoError(t, err)
		assert.Equal(t, 1, leaf.Degree())
		assert.True(t, g.HasEdge(hub, leaf))
	}
}

func TestWithPositions(t *testing.T) {
	// A path laid out along the X axis: every edge has unit length.
	g, err := build.Path[int, int](5, build.WithPositions(func(i int) geom.Vec {
		return geom.V(float64(i), 0, 0)
	}))
	require.NoError(t, err)

	for e := range g.AllEdges() {
		assert.InDelta(t, 1.0, e.Length(), 1e-12)
	}

	// Default: every node at the origin.
	h, err := build.Cycle[int, int](4)
	require.NoError(t, err)
	for n := range h.Nodes() {
		assert.Equal(t, geom.Vec{}, n.Position())
	}
}

func TestGridAdjacency(t *testing.T) {
	const rows, cols = 3, 3
	g, err := build.Grid2D[int, int](rows, cols)
	require.NoError(t, err)

	at := func(r, c int) core.Node[int, int] {
		n, err := g.Node(r*cols + c)
		require.NoError(t, err)
		return n
	}

	// Interior node has degree 4, corners 2, edges 3.
	assert.Equal(t, 4, at(1, 1).Degree())
	assert.Equal(t, 2, at(0, 0).Degree())
	assert.Equal(t, 3, at(0, 1).Degree())

	assert.True(t, g.HasEdge(at(1, 1), at(1, 2)))
	assert.True(t, g.HasEdge(at(1, 1), at(2, 1)))
	assert.False(t, g.HasEdge(at(0, 0), at(1, 1)), "no diagonals in the lattice")
}
