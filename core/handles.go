// Package core: Node and Edge handle methods.
//
// Handles are produced on demand from (graph, index) pairs and cache no
// derived data. Accessors validate the handle's indices against the live
// tables and panic on misuse rather than reading relocated data; see
// doc.go for the invalidation rules that make a handle stale.
package core

import "github.com/katalvlaran/meshgraph/geom"

//
// Node handle
//

// mustLive panics when the handle does not reference a live node.
func (n Node[V, E]) mustLive() {
	if n.g == nil || n.id < 0 || n.id >= len(n.g.nodes) {
		panic("core: use of invalid Node handle")
	}
}

// Index returns this node's dense id, a number in [0, NumNodes()).
// Ids are reassigned by removals and must be treated as ephemeral.
func (n Node[V, E]) Index() int {
	n.mustLive()
	return n.id
}

// Position returns this node's position.
func (n Node[V, E]) Position() geom.Vec {
	n.mustLive()
	return n.g.nodes[n.id].pos
}

// SetPosition updates this node's position in place.
// Safe during iteration; it does not change graph structure.
func (n Node[V, E]) SetPosition(p geom.Vec) {
	n.mustLive()
	n.g.nodes[n.id].pos = p
}

// Value returns this node's payload.
func (n Node[V, E]) Value() V {
	n.mustLive()
	return n.g.nodes[n.id].val
}

// SetValue updates this node's payload in place.
// Safe during iteration; it does not change graph structure.
func (n Node[V, E]) SetValue(v V) {
	n.mustLive()
	n.g.nodes[n.id].val = v
}

// Degree returns the number of edges incident to this node.
func (n Node[V, E]) Degree() int {
	n.mustLive()
	return len(n.g.adjacency[n.id])
}

// EdgeBegin returns an iterator over this node's incident edges.
// Each yielded edge has Node1() == n.
func (n Node[V, E]) EdgeBegin() IncidentIterator[V, E] {
	n.mustLive()
	return IncidentIterator[V, E]{g: n.g, center: n.id}
}

// EdgeEnd returns the end sentinel for this node's incident edges.
func (n Node[V, E]) EdgeEnd() IncidentIterator[V, E] {
	n.mustLive()
	return IncidentIterator[V, E]{g: n.g, center: n.id, slot: len(n.g.adjacency[n.id])}
}

// Equal reports whether n and o reference the same node of the same
// graph. Node is comparable, so == is equivalent.
func (n Node[V, E]) Equal(o Node[V, E]) bool {
	return n.g == o.g && n.id == o.id
}

// Less orders nodes primarily by id within one graph, and by graph
// instance id across graphs. The order is strict and total, suitable for
// sorting and map keys; it has no geometric meaning.
func (n Node[V, E]) Less(o Node[V, E]) bool {
	if n.g == o.g {
		return n.id < o.id
	}

	return n.gid() < o.gid()
}

func (n Node[V, E]) gid() uint64 {
	if n.g == nil {
		return 0
	}
	return n.g.gid
}

//
// Edge handle
//

// mustLive panics when the handle does not reference a live half-edge.
func (e Edge[V, E]) mustLive() {
	if e.g == nil || e.from < 0 || e.from >= len(e.g.nodes) ||
		e.slot < 0 || e.slot >= len(e.g.adjacency[e.from]) {
		panic("core: use of invalid Edge handle")
	}
}

// node2ID reads the neighbor id stored at this half-edge's slot.
func (e Edge[V, E]) node2ID() int {
	return e.g.adjacency[e.from][e.slot].to
}

// Node1 returns the home endpoint of this half-edge.
func (e Edge[V, E]) Node1() Node[V, E] {
	e.mustLive()
	return Node[V, E]{g: e.g, id: e.from}
}

// Node2 returns the far endpoint of this half-edge.
func (e Edge[V, E]) Node2() Node[V, E] {
	e.mustLive()
	return Node[V, E]{g: e.g, id: e.node2ID()}
}

// Value returns the payload stored on this half of the edge.
// The two halves of one undirected edge carry independent payload copies;
// use Dual or SetValueBoth when symmetric attributes are wanted.
func (e Edge[V, E]) Value() E {
	e.mustLive()
	return e.g.adjacency[e.from][e.slot].val
}

// SetValue updates the payload of this half only.
// Safe during iteration; it does not change graph structure.
func (e Edge[V, E]) SetValue(v E) {
	e.mustLive()
	e.g.adjacency[e.from][e.slot].val = v
}

// SetValueBoth updates the payload of this half and of its dual, keeping
// the two directed halves in sync.
// Complexity: O(Degree(Node2)) for the dual lookup.
func (e Edge[V, E]) SetValueBoth(v E) {
	e.SetValue(v)
	if d, ok := e.Dual(); ok {
		d.SetValue(v)
	}
}

// Length returns the Euclidean distance between the endpoint positions.
func (e Edge[V, E]) Length() float64 {
	e.mustLive()
	return e.g.nodes[e.from].pos.Distance(e.g.nodes[e.node2ID()].pos)
}

// Dual returns the reciprocal half-edge stored at the far endpoint, found
// by scanning that endpoint's adjacency list for the entry pointing back.
// The boolean is false only when the reciprocal is missing, which cannot
// happen for a live handle of a consistent graph.
// Complexity: O(Degree(Node2)).
func (e Edge[V, E]) Dual() (Edge[V, E], bool) {
	e.mustLive()
	n2 := e.node2ID()
	if s := e.g.slotOf(n2, e.from); s >= 0 {
		return Edge[V, E]{g: e.g, from: n2, slot: s}, true
	}

	return Edge[V, E]{}, false
}

// Equal reports whether e and o reference the same undirected edge of the
// same graph, regardless of which half either handle is keyed on.
func (e Edge[V, E]) Equal(o Edge[V, E]) bool {
	if e.g != o.g {
		return false
	}
	e.mustLive()
	o.mustLive()
	en2, on2 := e.node2ID(), o.node2ID()

	return (e.from == o.from && en2 == on2) || (e.from == on2 && en2 == o.from)
}

// Less orders edges lexicographically on (min endpoint id, max endpoint
// id) within one graph, and by graph instance id across graphs. Strict
// total order with no interpretive meaning.
func (e Edge[V, E]) Less(o Edge[V, E]) bool {
	e.mustLive()
	o.mustLive()
	if e.g != o.g {
		return e.g.gid < o.g.gid
	}
	emin, emax := minMax(e.from, e.node2ID())
	omin, omax := minMax(o.from, o.node2ID())
	if emin != omin {
		return emin < omin
	}

	return emax < omax
}

// minMax orders a pair of ids ascending.
func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
