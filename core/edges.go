// Package core: edge lifecycle and queries on the adjacency table.
//
// One undirected edge is stored as two directed half-edges, one in each
// endpoint's adjacency list. All removals compact lists with
// swap-with-last-and-pop, which is what makes slot indices part of edge
// identity and drives the invalidation contract documented per method.
package core

import "fmt"

// NumEdges returns the number of undirected edges.
// A half-edge count is maintained by every mutation, so this is O(1).
func (g *Graph[V, E]) NumEdges() int {
	return g.halfEdges / 2
}

// HasEdge reports whether an edge connects a and b.
// Handles from other graphs or with stale ids report false.
// Complexity: O(Degree(a)).
func (g *Graph[V, E]) HasEdge(a, b Node[V, E]) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}

	return g.slotOf(a.id, b.id) >= 0
}

// AddEdge connects a and b, returning a handle with Node1()==a and
// Node2()==b. If the edge already exists the existing handle is returned
// and the graph is unchanged (idempotent, never a duplicate). Both new
// half-edges start with a zero-value payload. Appending never relocates
// existing adjacency entries, so outstanding edge handles stay valid.
//
// Returns ErrForeignNode, ErrInvalidNode, or ErrSelfLoop when a == b.
// Complexity: O(Degree(a)) to check existence, O(1) amortized to append.
func (g *Graph[V, E]) AddEdge(a, b Node[V, E]) (Edge[V, E], error) {
	if a.g != g || b.g != g {
		return Edge[V, E]{}, fmt.Errorf("AddEdge: %w", ErrForeignNode)
	}
	if a.id < 0 || a.id >= len(g.nodes) || b.id < 0 || b.id >= len(g.nodes) {
		return Edge[V, E]{}, fmt.Errorf("AddEdge: %w", ErrInvalidNode)
	}
	if a.id == b.id {
		return Edge[V, E]{}, fmt.Errorf("AddEdge: %w", ErrSelfLoop)
	}

	// Idempotent path: surface the existing half-edge keyed on a.
	if s := g.slotOf(a.id, b.id); s >= 0 {
		return Edge[V, E]{g: g, from: a.id, slot: s}, nil
	}

	var zero E
	g.adjacency[a.id] = append(g.adjacency[a.id], halfEdge[E]{to: b.id, val: zero})
	g.adjacency[b.id] = append(g.adjacency[b.id], halfEdge[E]{to: a.id, val: zero})
	g.halfEdges += 2

	return Edge[V, E]{g: g, from: a.id, slot: len(g.adjacency[a.id]) - 1}, nil
}

// RemoveEdge deletes the edge between a and b, reporting whether one
// existed. A missing edge is not an error: (false, nil) is returned and
// the graph is unchanged.
//
// Invalidation: in each endpoint's adjacency list the last entry is
// swapped into the freed slot, so edge handles keyed on either
// overwritten slot must be discarded.
//
// Returns ErrForeignNode or ErrInvalidNode for unusable handles.
// Complexity: O(Degree(a) + Degree(b)).
func (g *Graph[V, E]) RemoveEdge(a, b Node[V, E]) (bool, error) {
	if a.g != g || b.g != g {
		return false, fmt.Errorf("RemoveEdge: %w", ErrForeignNode)
	}
	if a.id < 0 || a.id >= len(g.nodes) || b.id < 0 || b.id >= len(g.nodes) {
		return false, fmt.Errorf("RemoveEdge: %w", ErrInvalidNode)
	}

	if !g.dropHalfEdge(a.id, b.id) {
		return false, nil
	}
	g.dropHalfEdge(b.id, a.id)
	g.halfEdges -= 2

	return true, nil
}

// RemoveEdgeHandle deletes the edge referenced by e, reporting whether it
// still existed. Same invalidation contract as RemoveEdge.
//
// Returns ErrForeignNode or ErrInvalidEdge for unusable handles.
// Complexity: O(Degree(Node1) + Degree(Node2)).
func (g *Graph[V, E]) RemoveEdgeHandle(e Edge[V, E]) (bool, error) {
	if e.g != g {
		return false, fmt.Errorf("RemoveEdgeHandle: %w", ErrForeignNode)
	}
	if e.from < 0 || e.from >= len(g.nodes) || e.slot < 0 || e.slot >= len(g.adjacency[e.from]) {
		return false, fmt.Errorf("RemoveEdgeHandle: %w", ErrInvalidEdge)
	}

	return g.RemoveEdge(Node[V, E]{g: g, id: e.from}, Node[V, E]{g: g, id: g.adjacency[e.from][e.slot].to})
}

// RemoveEdgeAt removes the edge currently referenced by it and returns an
// iterator re-synchronized onto the next surfaced half-edge (the removal
// may have swapped a new entry into the cursor's slot).
//
// Returns ErrForeignNode if the iterator belongs to another graph and
// ErrIteratorExhausted if it is at the end sentinel.
// Complexity: as RemoveEdge plus the normalization scan.
func (g *Graph[V, E]) RemoveEdgeAt(it EdgeIterator[V, E]) (EdgeIterator[V, E], error) {
	if it.g != g {
		return EdgeIterator[V, E]{}, fmt.Errorf("RemoveEdgeAt: %w", ErrForeignNode)
	}
	if it.center >= len(g.nodes) {
		return EdgeIterator[V, E]{}, fmt.Errorf("RemoveEdgeAt: %w", ErrIteratorExhausted)
	}
	if _, err := g.RemoveEdgeHandle(it.Edge()); err != nil {
		return EdgeIterator[V, E]{}, err
	}
	it.fix()

	return it, nil
}

// Edge returns the i-th edge in EdgeIterator order.
// Returns ErrIndexOutOfRange unless 0 <= i < NumEdges().
// Complexity: O(i + NumNodes()) walk; edge indices are not stable across
// mutations, so callers needing repeated positional access should iterate.
func (g *Graph[V, E]) Edge(i int) (Edge[V, E], error) {
	if i < 0 || i >= g.NumEdges() {
		return Edge[V, E]{}, fmt.Errorf("Edge(%d): %w", i, ErrIndexOutOfRange)
	}
	it := g.EdgeBegin()
	for ; i > 0; i-- {
		it.Next()
	}

	return it.Edge(), nil
}

// Clear removes all nodes and edges. Every outstanding handle and
// iterator is invalidated.
// Complexity: O(1) plus garbage collection of the old tables.
func (g *Graph[V, E]) Clear() {
	g.nodes = nil
	g.adjacency = nil
	g.halfEdges = 0
}

// slotOf returns the index of the half-edge from→to within from's
// adjacency list, or -1 if absent.
// Complexity: O(len(adjacency[from])).
func (g *Graph[V, E]) slotOf(from, to int) int {
	for i, he := range g.adjacency[from] {
		if he.to == to {
			return i
		}
	}

	return -1
}
