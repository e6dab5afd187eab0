// Package geom provides the small 3D vector type used throughout meshgraph
// to position nodes in Euclidean space.
//
// Vec is a plain value type: all operations return new vectors and never
// mutate their receiver, so vectors can be copied, compared and embedded
// freely. Edge lengths in meshgraph/core are derived from Vec.Distance.
package geom
