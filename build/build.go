// Package build: topology constructors.
//
// Each constructor allocates a fresh core.Graph, adds n nodes with
// positions from the resolved config, then wires edges in a fixed order.
// AddEdge cannot fail on the ids generated here, but errors are still
// propagated with context rather than swallowed.
package build

import (
	"fmt"

	"github.com/katalvlaran/meshgraph/core"
)

// Path builds a chain 0-1-...-(n-1) with n-1 edges.
// Requires n >= 2.
// Complexity: O(n).
func Path[V, E any](n int, opts ...Option) (*core.Graph[V, E], error) {
	if n < 2 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrTooFewNodes)
	}
	g, nodes := scaffold[V, E](n, newConfig(opts...))
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(nodes[i-1], nodes[i]); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds a ring 0-1-...-(n-1)-0 with n edges.
// Requires n >= 3.
// Complexity: O(n).
func Cycle[V, E any](n int, opts ...Option) (*core.Graph[V, E], error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle(%d): %w", n, ErrTooFewNodes)
	}
	g, nodes := scaffold[V, E](n, newConfig(opts...))
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(nodes[i], nodes[(i+1)%n]); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n with n(n-1)/2 edges.
// Requires n >= 2.
// Complexity: O(n^2).
func Complete[V, E any](n int, opts ...Option) (*core.Graph[V, E], error) {
	if n < 2 {
		return nil, fmt.Errorf("Complete(%d): %w", n, ErrTooFewNodes)
	}
	g, nodes := scaffold[V, E](n, newConfig(opts...))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(nodes[i], nodes[j]); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Star builds a hub (id 0) connected to the given number of leaves
// (ids 1..leaves).
// Requires leaves >= 1.
// Complexity: O(leaves).
func Star[V, E any](leaves int, opts ...Option) (*core.Graph[V, E], error) {
	if leaves < 1 {
		return nil, fmt.Errorf("Star(%d): %w", leaves, ErrTooFewNodes)
	}
	g, nodes := scaffold[V, E](leaves+1, newConfig(opts...))
	for i := 1; i <= leaves; i++ {
		if _, err := g.AddEdge(nodes[0], nodes[i]); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return g, nil
}

// Grid2D builds a rows×cols lattice. Node ordinals are row-major
// (r*cols + c); each node connects to its right and down neighbors.
// Requires rows >= 1 and cols >= 1.
// Complexity: O(rows·cols).
func Grid2D[V, E any](rows, cols int, opts ...Option) (*core.Graph[V, E], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid2D(%d,%d): %w", rows, cols, ErrBadDimensions)
	}
	g, nodes := scaffold[V, E](rows*cols, newConfig(opts...))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				if _, err := g.AddEdge(nodes[at], nodes[at+1]); err != nil {
					return nil, fmt.Errorf("Grid2D: %w", err)
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(nodes[at], nodes[at+cols]); err != nil {
					return nil, fmt.Errorf("Grid2D: %w", err)
				}
			}
		}
	}

	return g, nil
}

// scaffold allocates the graph and its n nodes in ordinal order.
func scaffold[V, E any](n int, cfg config) (*core.Graph[V, E], []core.Node[V, E]) {
	g := core.NewGraph[V, E]()
	nodes := make([]core.Node[V, E], n)
	for i := 0; i < n; i++ {
		nodes[i] = g.AddNode(cfg.position(i))
	}

	return g, nodes
}
