// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle, edge properties and edge queries.
// Determinism:
//   - Edges() enumerates ascending by Edge.ID (creation order).
// Concurrency:
//   - Mutations under g.mu write lock; queries via pinned Snapshots.
// AI-HINT (file):
//   - AddEdge validates both endpoints before allocating an ID; a failed call changes nothing.
//   - Self-loops and parallel edges are allowed.

package core

import (
	"fmt"
	"iter"
)

// AddEdge creates a directed edge from -> to with the given label and properties.
//
// Steps:
//  1. Lock g.mu.
//  2. Verify both endpoints exist (ErrUnknownVertex otherwise; nothing allocated).
//  3. Allocate the ID, store the record and both adjacency entries.
//  4. Store the properties (index updated in the same step).
//
// Complexity: O((P+1)·log N).
func (g *Graph) AddEdge(label string, from, to ID, props ...Property) (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.vertices.Has(from) {
		return 0, fmt.Errorf("%w: %d (edge source)", ErrUnknownVertex, from)
	}
	if !g.vertices.Has(to) {
		return 0, fmt.Errorf("%w: %d (edge target)", ErrUnknownVertex, to)
	}

	eid := g.ids.Next()
	g.edges.ReplaceOrInsert(edgeRecord{id: eid, label: label, from: from, to: to})
	g.out.ReplaceOrInsert(adjEntry{vertex: from, edge: eid})
	g.in.ReplaceOrInsert(adjEntry{vertex: to, edge: eid})
	for _, p := range props {
		g.eprops.Set(eid, p.Key, p.Value)
	}
	g.logger.Debug("edge added", "id", eid, "label", label, "from", from, "to", to)

	return eid, nil
}

// DropEdge removes edge eid, its properties, and its adjacency entries.
//
// Errors:
//   - ErrUnknownEdge: eid is not in the graph.
func (g *Graph) DropEdge(eid ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.dropEdge(eid) {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, eid)
	}
	g.logger.Debug("edge dropped", "id", eid)

	return nil
}

// dropEdge unlinks eid everywhere and reports whether it existed.
// Caller holds g.mu exclusively.
func (g *Graph) dropEdge(eid ID) bool {
	rec, ok := g.edges.Delete(edgeRecord{id: eid})
	if !ok {
		return false
	}
	g.out.Delete(adjEntry{vertex: rec.from, edge: eid})
	g.in.Delete(adjEntry{vertex: rec.to, edge: eid})
	g.eprops.RemoveOwner(eid)

	return true
}

// HasEdge reports whether eid names an edge currently in the graph.
func (g *Graph) HasEdge(eid ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Has(edgeRecord{id: eid})
}

// Edge returns a copy of edge eid.
//
// Errors:
//   - ErrUnknownEdge: eid is not in the graph.
func (g *Graph) Edge(eid ID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.edges.Get(edgeRecord{id: eid})
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownEdge, eid)
	}
	return Edge{ID: rec.id, Label: rec.label, From: rec.from, To: rec.to, Properties: g.eprops.Row(eid)}, nil
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Len()
}

// Edges lazily yields every edge, ascending by ID, from a snapshot pinned at call time.
func (g *Graph) Edges() iter.Seq[Edge] {
	return g.Snapshot().Edges()
}

// SetEdgeProperty appends value to key on edge eid.
//
// Errors:
//   - ErrUnknownEdge: eid is not in the graph.
func (g *Graph) SetEdgeProperty(eid ID, key string, value Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.edges.Has(edgeRecord{id: eid}) {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, eid)
	}
	g.eprops.Set(eid, key, value)
	g.logger.Debug("edge property set", "id", eid, "key", key)

	return nil
}

// RemoveEdgeProperty deletes every value of key on edge eid. Absent keys are a no-op.
//
// Errors:
//   - ErrUnknownEdge: eid is not in the graph.
func (g *Graph) RemoveEdgeProperty(eid ID, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.edges.Has(edgeRecord{id: eid}) {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, eid)
	}
	g.eprops.Remove(eid, key)
	g.logger.Debug("edge property removed", "id", eid, "key", key)

	return nil
}

// EdgeProperty returns the values of key on edge eid, nil when the key is absent.
//
// Errors:
//   - ErrUnknownEdge: eid is not in the graph.
func (g *Graph) EdgeProperty(eid ID, key string) ([]Value, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.edges.Has(edgeRecord{id: eid}) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEdge, eid)
	}
	return g.eprops.Get(eid, key), nil
}

// LookupEdges returns the IDs of the edges holding value under key, ascending.
func (g *Graph) LookupEdges(key string, value Value) []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.eprops.Index().Lookup(key, value)
}
