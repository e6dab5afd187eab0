// Package core: the three iterator kinds plus range-over-func adapters.
//
// Iterators are cursors over table indices that produce handles lazily on
// dereference. They are plain comparable values: an iterator equals
// another iff both reference the same cursor of the same graph, so Begin
// and End sentinels compare with ==. Structural edits other than the
// dedicated RemoveNodeAt/RemoveEdgeAt overloads invalidate any iterator
// touching the affected indices.
package core

import "iter"

//
// NodeIterator
//

// NodeIterator walks node ids 0, 1, ..., NumNodes()-1.
type NodeIterator[V, E any] struct {
	g   *Graph[V, E]
	idx int
}

// NodeBegin returns an iterator at the first node.
func (g *Graph[V, E]) NodeBegin() NodeIterator[V, E] {
	return NodeIterator[V, E]{g: g}
}

// NodeEnd returns the end sentinel, one past the last node.
func (g *Graph[V, E]) NodeEnd() NodeIterator[V, E] {
	return NodeIterator[V, E]{g: g, idx: len(g.nodes)}
}

// Node returns the handle under the cursor.
func (it NodeIterator[V, E]) Node() Node[V, E] {
	return Node[V, E]{g: it.g, id: it.idx}
}

// Next advances the cursor by one id.
func (it *NodeIterator[V, E]) Next() {
	it.idx++
}

// Done reports whether the cursor is past the last node.
func (it NodeIterator[V, E]) Done() bool {
	return it.g == nil || it.idx >= len(it.g.nodes)
}

//
// IncidentIterator
//

// IncidentIterator walks the adjacency slots of a single center node.
// Every yielded edge has the center as Node1.
type IncidentIterator[V, E any] struct {
	g      *Graph[V, E]
	center int
	slot   int
}

// Edge returns the handle under the cursor.
func (it IncidentIterator[V, E]) Edge() Edge[V, E] {
	return Edge[V, E]{g: it.g, from: it.center, slot: it.slot}
}

// Next advances the cursor by one slot.
func (it *IncidentIterator[V, E]) Next() {
	it.slot++
}

// Done reports whether the cursor is past the center's last incident edge.
func (it IncidentIterator[V, E]) Done() bool {
	return it.g == nil || it.center >= len(it.g.adjacency) ||
		it.slot >= len(it.g.adjacency[it.center])
}

//
// EdgeIterator
//

// EdgeIterator walks the whole adjacency table and yields each undirected
// edge exactly once. A half-edge center→neighbor is surfaced only when
// center < neighbor; the cursor is normalized past any half-edge failing
// that test eagerly, at construction and after every advance, so the end
// sentinel (NumNodes, 0) stays well-defined and comparable.
type EdgeIterator[V, E any] struct {
	g      *Graph[V, E]
	center int
	slot   int
}

// EdgeBegin returns an iterator normalized onto the first surfaced edge.
func (g *Graph[V, E]) EdgeBegin() EdgeIterator[V, E] {
	it := EdgeIterator[V, E]{g: g}
	it.fix()

	return it
}

// EdgeEnd returns the end sentinel (NumNodes, 0).
func (g *Graph[V, E]) EdgeEnd() EdgeIterator[V, E] {
	return EdgeIterator[V, E]{g: g, center: len(g.nodes)}
}

// Edge returns the handle under the cursor.
func (it EdgeIterator[V, E]) Edge() Edge[V, E] {
	return Edge[V, E]{g: it.g, from: it.center, slot: it.slot}
}

// Next advances to the following surfaced half-edge.
func (it *EdgeIterator[V, E]) Next() {
	it.slot++
	it.fix()
}

// Done reports whether the cursor reached the end sentinel.
func (it EdgeIterator[V, E]) Done() bool {
	return it.g == nil || it.center >= len(it.g.nodes)
}

// fix skips forward until the cursor rests on a surfaced half-edge
// (center < neighbor) or on the end sentinel.
func (it *EdgeIterator[V, E]) fix() {
	for it.center < len(it.g.adjacency) {
		adj := it.g.adjacency[it.center]
		for it.slot < len(adj) {
			if it.center < adj[it.slot].to {
				return
			}
			it.slot++
		}
		it.center++
		it.slot = 0
	}
	it.slot = 0
}

//
// Range-over-func adapters (Go 1.23 iterators)
//

// Nodes returns a sequence over all nodes in id order.
// The graph must not be structurally mutated during the loop.
func (g *Graph[V, E]) Nodes() iter.Seq[Node[V, E]] {
	return func(yield func(Node[V, E]) bool) {
		for it := g.NodeBegin(); !it.Done(); it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// AllEdges returns a sequence over all undirected edges, each exactly
// once, in EdgeIterator order. The graph must not be structurally mutated
// during the loop.
func (g *Graph[V, E]) AllEdges() iter.Seq[Edge[V, E]] {
	return func(yield func(Edge[V, E]) bool) {
		for it := g.EdgeBegin(); !it.Done(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// Incident returns a sequence over this node's incident edges in slot
// order. The graph must not be structurally mutated during the loop.
func (n Node[V, E]) Incident() iter.Seq[Edge[V, E]] {
	n.mustLive()
	return func(yield func(Edge[V, E]) bool) {
		for it := n.EdgeBegin(); !it.Done(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}
