// Package core provides an in-memory, mutable, undirected graph container
// with dense integer node ids, generic node and edge payloads, 3D node
// positions, lightweight handles, and lazy iterators.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple (at most one edge per node pair), no self-loops.
//   - Node ids are dense: always exactly {0, ..., NumNodes()-1}, no gaps.
//   - One undirected edge is two directed half-edges, one per endpoint,
//     each carrying its own payload copy (see Edge.Value / Edge.Dual).
//   - O(1) amortized node insertion, O(Degree) edge lookup/insertion,
//     bounded-cost removal via swap-with-last-and-pop compaction with
//     adjacency retargeting.
//
// # Handles
//
// Node and Edge are non-owning views: a graph reference plus indices into
// the node and adjacency tables. They cache nothing, so they stay correct
// exactly as long as their indices remain meaningful:
//
//   - AddNode and AddEdge never relocate existing entries; handles survive.
//   - RemoveNode(n) moves the last id into n's slot: handles for either id,
//     and edge handles whose slot was compacted or retargeted, go stale.
//   - RemoveEdge compacts one slot per endpoint list: edge handles keyed on
//     an overwritten slot go stale.
//   - Clear invalidates everything.
//
// Stale handles that fall outside the live tables are caught: accessors
// panic with a descriptive message instead of reading relocated data.
// A stale handle whose indices happen to remain in range cannot be
// distinguished from a live one; callers must discard handles across any
// removal, as ids are reassigned rather than retired.
//
// # Iterators
//
// NodeIterator walks ids; IncidentIterator walks one node's adjacency
// slots; EdgeIterator walks the whole adjacency table, surfacing a
// half-edge only when center < neighbor so each undirected edge is
// yielded exactly once. All three are comparable cursor values with
// Begin/End sentinels, and Nodes/AllEdges/Incident expose the same
// traversals as Go 1.23 range-over-func sequences.
//
// # Errors
//
// Mutating operations return sentinel errors, branched with errors.Is:
//
//	ErrForeignNode       - handle from a different graph
//	ErrInvalidNode       - node handle with a dead id
//	ErrInvalidEdge       - edge handle with a dead slot
//	ErrSelfLoop          - AddEdge(n, n)
//	ErrIndexOutOfRange   - positional Node(i)/Edge(i) misuse
//	ErrIteratorExhausted - RemoveNodeAt/RemoveEdgeAt at the end sentinel
//
// Idempotent outcomes are not errors: AddEdge on an existing pair returns
// the existing handle, RemoveEdge on a missing pair returns (false, nil).
//
// # Concurrency
//
// Graph is single-threaded. Payload and position writes through handles
// do not alter structure and may interleave with reads, but structural
// edits require exclusive access; no internal locking is performed.
package core
