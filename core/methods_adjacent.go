// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Adjacency APIs (Outgoing, Incoming, Degree).
// Determinism:
//   - Per-vertex edges are yielded ascending by Edge.ID.
// Concurrency:
//   - Each call pins a Snapshot; iteration runs without the graph lock.
// AI-HINT (file):
//   - Backed by (vertex, edge) btrees: cost is O(log E + degree), never a full edge scan.

package core

import (
	"fmt"
	"iter"
)

// Outgoing lazily yields the edges whose source is id.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
//
// Complexity: O(log E + deg⁺(id)).
func (g *Graph) Outgoing(id ID) (iter.Seq[Edge], error) {
	return g.Snapshot().Outgoing(id)
}

// Incoming lazily yields the edges whose target is id.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
//
// Complexity: O(log E + deg⁻(id)).
func (g *Graph) Incoming(id ID) (iter.Seq[Edge], error) {
	return g.Snapshot().Incoming(id)
}

// Degree returns the in- and out-degree of id; a self-loop counts once in each.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
func (g *Graph) Degree(id ID) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertices.Has(id) {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return countAdjacent(g.in, id), countAdjacent(g.out, id), nil
}
