// Package core defines the central Graph type with its Node and Edge
// handles, and the iterators used to traverse them.
//
// This file declares the sentinel errors, the internal storage records,
// the Graph type itself, and the NewGraph constructor.
//
// Errors:
//
//	ErrForeignNode       - a handle belongs to a different graph.
//	ErrInvalidNode       - a node handle references a removed or out-of-range id.
//	ErrInvalidEdge       - an edge handle references a removed or out-of-range slot.
//	ErrSelfLoop          - an edge from a node to itself was requested.
//	ErrIndexOutOfRange   - a positional index is outside [0, count).
//	ErrIteratorExhausted - a mutating iterator overload was called at the end sentinel.
package core

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/meshgraph/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrForeignNode indicates a handle that belongs to a different Graph instance.
	ErrForeignNode = errors.New("core: handle belongs to a different graph")

	// ErrInvalidNode indicates a node handle whose id is no longer a live node.
	ErrInvalidNode = errors.New("core: node handle is not valid")

	// ErrInvalidEdge indicates an edge handle whose (origin, slot) pair is no longer live.
	ErrInvalidEdge = errors.New("core: edge handle is not valid")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrIndexOutOfRange indicates a positional index outside [0, count).
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrIteratorExhausted indicates a mutating iterator overload invoked at the end sentinel.
	ErrIteratorExhausted = errors.New("core: iterator is exhausted")
)

// graphIDs hands out a unique instance id per Graph so that handle ordering
// between distinct graphs is a strict total order (no geometric meaning).
var graphIDs atomic.Uint64

// nodeRecord is one slot of the node table: the node's position in space
// and its user payload, both mutable in place through a Node handle.
type nodeRecord[V any] struct {
	pos geom.Vec
	val V
}

// halfEdge is one directed side of an undirected edge, stored in the
// adjacency list of its home node. The reciprocal half lives in the
// neighbor's list and carries its own independent payload copy.
type halfEdge[E any] struct {
	to  int // neighbor node id
	val E   // payload of this half only
}

// Graph is an in-memory, mutable, undirected graph with dense integer
// node ids, a generic node payload V and a generic edge payload E.
//
// Node ids are always exactly {0, ..., NumNodes()-1}. Removing a node
// reassigns the last id into the freed slot (swap-and-pop), so ids are
// ephemeral across removals; see RemoveNode for the full invalidation
// contract. Edges are unique per unordered node pair and are stored as
// two directed half-edges, one per endpoint.
//
// Graph is not safe for concurrent mutation. Payload writes through
// handles do not change structure and may interleave with iteration,
// but any structural edit requires exclusive access.
type Graph[V, E any] struct {
	gid       uint64          // instance id, used only for cross-graph ordering
	nodes     []nodeRecord[V] // node table, indexed by node id
	adjacency [][]halfEdge[E] // per-node half-edge lists, indexed by node id
	halfEdges int             // cached count; NumEdges() == halfEdges/2
}

// Node is a lightweight handle onto one node of a Graph: a reference to
// the graph plus the node's current dense id. It carries no owned state
// and stays correct as long as its id remains meaningful.
//
// Node is comparable; two handles are == iff they reference the same id
// in the same graph. The zero Node is invalid.
type Node[V, E any] struct {
	g  *Graph[V, E]
	id int
}

// Edge is a lightweight handle onto one half-edge of a Graph: a reference
// to the graph, the home endpoint id (Node1) and the slot index within
// that endpoint's adjacency list. The slot index is part of edge identity,
// so removals that compact an adjacency list invalidate handles keyed on
// the overwritten slot.
//
// The zero Edge is invalid.
type Edge[V, E any] struct {
	g    *Graph[V, E]
	from int // home endpoint id (Node1)
	slot int // index within from's adjacency list
}

// NewGraph creates an empty undirected graph.
// Complexity: O(1).
func NewGraph[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{gid: graphIDs.Add(1)}
}
