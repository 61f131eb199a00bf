// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries the allocator position so IDs issued by the clone never
//     collide with IDs copied from the source.
// Concurrency:
//   - Clone pins a Snapshot of the source; the source is not mutated.
// AI-HINT (file):
//   - Clear() empties the graph but keeps the allocator: IDs are never reused.

package core

// Clone returns an independent Graph with the same vertices, edges,
// properties and identifiers as g. Options (logger, name, degree) are
// inherited unless overridden by opts.
//
// Complexity: O(1) plus copy-on-write cost paid by later mutations of either graph.
func (g *Graph) Clone(opts ...GraphOption) *Graph {
	snap := g.Snapshot()

	g.mu.RLock()
	base := []GraphOption{WithLogger(g.logger), WithName(g.name), WithDegree(g.degree)}
	last := g.ids.Last()
	g.mu.RUnlock()

	clone := NewGraph(append(base, opts...)...)
	clone.ids.last.Store(uint64(last))
	// The snapshot trees are private to this call; hand them over directly.
	clone.vertices = snap.vertices
	clone.edges = snap.edges
	clone.out = snap.out
	clone.in = snap.in
	clone.vprops = snap.vprops
	clone.eprops = snap.eprops

	return clone
}

// Clear removes every vertex and edge. The allocator is kept, so IDs issued
// before Clear are never issued again.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices.Clear(false)
	g.edges.Clear(false)
	g.out.Clear(false)
	g.in.Clear(false)
	g.vprops = NewPropertyTable(g.degree)
	g.eprops = NewPropertyTable(g.degree)
	g.logger.Debug("graph cleared")
}
