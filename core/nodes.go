// Package core: node table lifecycle and queries.
//
// This file implements the node side of the mutation contract: O(1)
// amortized insertion, O(1) lookups, and the swap-and-pop removal that
// keeps node ids dense without shifting every subsequent id.
package core

import (
	"fmt"

	"github.com/katalvlaran/meshgraph/geom"
)

// NumNodes returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph[V, E]) NumNodes() int {
	return len(g.nodes)
}

// Size is a synonym for NumNodes.
// Complexity: O(1).
func (g *Graph[V, E]) Size() int {
	return len(g.nodes)
}

// AddNode appends a node with the given position and a zero-value payload,
// returning a handle to it. The new node receives id NumNodes()-1; no
// existing id is touched, so prior handles remain valid.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddNode(pos geom.Vec) Node[V, E] {
	var zero V
	return g.AddNodeWithValue(pos, zero)
}

// AddNodeWithValue appends a node with the given position and initial
// payload, returning a handle to it.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddNodeWithValue(pos geom.Vec, val V) Node[V, E] {
	g.nodes = append(g.nodes, nodeRecord[V]{pos: pos, val: val})
	g.adjacency = append(g.adjacency, nil)

	return Node[V, E]{g: g, id: len(g.nodes) - 1}
}

// HasNode reports whether n is a live node of this graph.
// Handles from other graphs and handles whose id was compacted away
// report false.
// Complexity: O(1).
func (g *Graph[V, E]) HasNode(n Node[V, E]) bool {
	return n.g == g && n.id >= 0 && n.id < len(g.nodes)
}

// Node returns a handle to the node with id i.
// Returns ErrIndexOutOfRange unless 0 <= i < NumNodes().
// Complexity: O(1).
func (g *Graph[V, E]) Node(i int) (Node[V, E], error) {
	if i < 0 || i >= len(g.nodes) {
		return Node[V, E]{}, fmt.Errorf("Node(%d): %w", i, ErrIndexOutOfRange)
	}

	return Node[V, E]{g: g, id: i}, nil
}

// RemoveNode deletes n and every edge incident to it.
//
// To keep ids dense the last node is moved into the freed slot:
//  1. Every reciprocal half-edge pointing back at n is dropped from the
//     neighbors' lists (swap-with-last-and-pop).
//  2. The node table and adjacency table slots of n are overwritten with
//     the contents of the last slot, and both tables shrink by one.
//  3. Every reciprocal half-edge that pointed at the moved node's old id
//     is retargeted to n's id.
//
// Postconditions: NumNodes() decreases by 1 and NumEdges() decreases by
// the pre-removal Degree of n. The node previously holding the last id is
// now reachable under n's old id.
//
// Invalidation: handles and iterators referencing n's id or the old last
// id, and every edge handle touching n or a retargeted neighbor slot,
// must be discarded by the caller.
//
// Returns ErrForeignNode if n belongs to another graph, ErrInvalidNode if
// its id is not live.
// Complexity: O(Degree(n)^2) amortized over the neighbor scans.
func (g *Graph[V, E]) RemoveNode(n Node[V, E]) error {
	if n.g != g {
		return fmt.Errorf("RemoveNode: %w", ErrForeignNode)
	}
	if n.id < 0 || n.id >= len(g.nodes) {
		return fmt.Errorf("RemoveNode: %w", ErrInvalidNode)
	}

	nid := n.id
	lid := len(g.nodes) - 1

	// Step 1: drop the reciprocal of every half-edge leaving nid.
	// No self-loops exist, so these scans never mutate adjacency[nid].
	for _, he := range g.adjacency[nid] {
		g.dropHalfEdge(he.to, nid)
	}
	g.halfEdges -= 2 * len(g.adjacency[nid])

	// Steps 2 and 3: move the last slot into the freed one and retarget.
	// When nid is already the last id there is nothing to move.
	if nid != lid {
		g.nodes[nid] = g.nodes[lid]
		g.adjacency[nid] = g.adjacency[lid]
		for _, he := range g.adjacency[nid] {
			g.retargetHalfEdge(he.to, lid, nid)
		}
	}
	g.nodes = g.nodes[:lid]
	g.adjacency[lid] = nil
	g.adjacency = g.adjacency[:lid]

	return nil
}

// RemoveNodeAt removes the node currently referenced by it and returns an
// iterator usable to continue traversal. The returned iterator references
// the same slot, which now holds the node swapped in by the removal, so
// callers must not advance past it blindly before inspecting it.
//
// Returns ErrForeignNode if the iterator belongs to another graph and
// ErrIteratorExhausted if it is at the end sentinel.
// Complexity: as RemoveNode.
func (g *Graph[V, E]) RemoveNodeAt(it NodeIterator[V, E]) (NodeIterator[V, E], error) {
	if it.g != g {
		return NodeIterator[V, E]{}, fmt.Errorf("RemoveNodeAt: %w", ErrForeignNode)
	}
	if it.idx >= len(g.nodes) {
		return NodeIterator[V, E]{}, fmt.Errorf("RemoveNodeAt: %w", ErrIteratorExhausted)
	}
	if err := g.RemoveNode(it.Node()); err != nil {
		return NodeIterator[V, E]{}, err
	}

	return it, nil
}

// dropHalfEdge removes the half-edge from→to via swap-with-last-and-pop,
// reporting whether it was present. At most one such half-edge exists.
// Complexity: O(len(adjacency[from])).
func (g *Graph[V, E]) dropHalfEdge(from, to int) bool {
	adj := g.adjacency[from]
	for i := range adj {
		if adj[i].to == to {
			adj[i] = adj[len(adj)-1]
			g.adjacency[from] = adj[:len(adj)-1]
			return true
		}
	}

	return false
}

// retargetHalfEdge rewrites the half-edge from→oldID to point at newID.
// Complexity: O(len(adjacency[from])).
func (g *Graph[V, E]) retargetHalfEdge(from, oldID, newID int) {
	adj := g.adjacency[from]
	for i := range adj {
		if adj[i].to == oldID {
			adj[i].to = newID
			return
		}
	}
}
