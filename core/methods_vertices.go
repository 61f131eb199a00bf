// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, vertex properties and vertex queries.
//
// Determinism:
//   - Vertices() enumerates ascending by ID, i.e. creation order.
//
// Concurrency:
//   - Mutations hold g.mu exclusively for their whole duration, including
//     the DropVertex cascade.
//   - Queries pin a Snapshot and release the lock before iterating.
//
// AI-Hints (file):
//   - AddVertex never fails; DropVertex removes incident edges too.
//   - Property reads on absent keys return nil, not an error.

package core

import (
	"fmt"
	"iter"
)

// AddVertex creates a vertex carrying the given properties and returns its ID.
//
// Implementation:
//   - Stage 1: Allocate a fresh ID under the write lock.
//   - Stage 2: Register the ID and store each property (index updated in the same step).
//
// Complexity: O(P·log N) for P properties.
func (g *Graph) AddVertex(props ...Property) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.ids.Next()
	g.vertices.ReplaceOrInsert(id)
	for _, p := range props {
		g.vprops.Set(id, p.Key, p.Value)
	}
	g.logger.Debug("vertex added", "id", id, "properties", len(props))

	return id
}

// DropVertex removes vertex id and every edge incident to it, together with
// their properties and index entries. The cascade completes before the lock
// is released, so no caller observes a partial removal.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
//
// Complexity: O((deg(id)+P)·log N).
func (g *Graph) DropVertex(id ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.vertices.Has(id) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}

	// Collect first: dropEdge mutates the trees being scanned.
	var incident []ID
	for eid := range adjacentIDs(g.out, id) {
		incident = append(incident, eid)
	}
	for eid := range adjacentIDs(g.in, id) {
		incident = append(incident, eid)
	}
	dropped := 0
	for _, eid := range incident {
		// Self-loops appear in both lists; the second pass is a no-op.
		if g.dropEdge(eid) {
			dropped++
		}
	}

	g.vprops.RemoveOwner(id)
	g.vertices.Delete(id)
	g.logger.Debug("vertex dropped", "id", id, "edges", dropped)

	return nil
}

// HasVertex reports whether id names a vertex currently in the graph.
// Complexity: O(log V).
func (g *Graph) HasVertex(id ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Has(id)
}

// Vertex returns a copy of vertex id.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
func (g *Graph) Vertex(id ID) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertices.Has(id) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return Vertex{ID: id, Properties: g.vprops.Row(id)}, nil
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}

// Vertices lazily yields every vertex, ascending by ID, from a snapshot
// pinned at call time. Mutations made afterwards are not observed.
func (g *Graph) Vertices() iter.Seq[Vertex] {
	return g.Snapshot().Vertices()
}

// SetVertexProperty appends value to key on vertex id.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
func (g *Graph) SetVertexProperty(id ID, key string, value Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.vertices.Has(id) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	g.vprops.Set(id, key, value)
	g.logger.Debug("vertex property set", "id", id, "key", key)

	return nil
}

// RemoveVertexProperty deletes every value of key on vertex id.
// Removing an absent key is a no-op.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
func (g *Graph) RemoveVertexProperty(id ID, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.vertices.Has(id) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	g.vprops.Remove(id, key)
	g.logger.Debug("vertex property removed", "id", id, "key", key)

	return nil
}

// VertexProperty returns the values of key on vertex id, nil when the key is absent.
//
// Errors:
//   - ErrUnknownVertex: id is not in the graph.
func (g *Graph) VertexProperty(id ID, key string) ([]Value, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertices.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return g.vprops.Get(id, key), nil
}

// LookupVertices returns the IDs of the vertices holding value under key,
// ascending. Served from the reverse index.
func (g *Graph) LookupVertices(key string, value Value) []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vprops.Index().Lookup(key, value)
}
