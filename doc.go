// Package meshgraph is an in-memory container for undirected graphs whose
// nodes live in 3D space — the kind of structure mesh simulations and
// geometric algorithms build on, with payloads on every node and edge.
//
// 🚀 What is meshgraph?
//
//	A small, dependency-light library organized in three subpackages:
//		• core/ — the Graph container: dense node ids, generic node/edge
//		  payloads, handles, iterators, and precise mutation contracts
//		• geom/ — the 3D vector type nodes are positioned with
//		• build/ — deterministic topology constructors (paths, cycles,
//		  complete graphs, stars, grids) for fixtures and meshes
//
// ✨ Why choose meshgraph?
//
//   - Dense ids – nodes are always {0..n-1}, ideal for array-backed client state
//   - Cheap handles – container+index views, no per-entity allocation
//   - Exact contracts – every mutation documents complexity and invalidation
//   - Pure Go – no cgo, a single test-only dependency
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g, _ := build.Cycle[string, float64](4)
//	fmt.Println(g.NumNodes(), g.NumEdges()) // 4 4
//
// Start with core.NewGraph, or with a build constructor when the shape is
// one of the stock topologies.
package meshgraph
