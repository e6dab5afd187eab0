// Package build provides deterministic topology constructors for
// meshgraph/core graphs: paths, cycles, complete graphs, stars and 2D
// grids.
//
// Every constructor validates its parameters early and returns sentinel
// errors (branch with errors.Is); none panic. Node positions default to
// the origin and can be assigned per ordinal with WithPositions, which is
// how clients lay meshes out in space before measuring edge lengths.
//
// Determinism: the same parameters and options always produce the same
// graph, with node ids assigned in ordinal order and edges added in a
// fixed order.
package build
