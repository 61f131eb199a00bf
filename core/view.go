// SPDX-License-Identifier: MIT
// File: view.go
// Role: Snapshot, the immutable read view every query is served from.
// Determinism:
//   - Vertices()/Edges() enumerate ascending by ID (creation order).
//   - Outgoing()/Incoming() enumerate ascending by Edge.ID.
// Concurrency:
//   - A Snapshot is never mutated after creation; any number of goroutines
//     may read it while the Graph keeps changing.
// AI-HINT (file):
//   - Sequences returned here are restartable: ranging twice re-reads the same data.
//   - VerticesWith/EdgesWith are index range scans, not full scans.

package core

import (
	"fmt"
	"iter"

	"github.com/google/btree"
)

// Snapshot is a consistent, immutable view of a Graph at one instant.
// It costs O(1) to take: the underlying btrees are shared copy-on-write.
type Snapshot struct {
	vertices *btree.BTreeG[ID]
	edges    *btree.BTreeG[edgeRecord]
	out      *btree.BTreeG[adjEntry]
	in       *btree.BTreeG[adjEntry]
	vprops   *PropertyTable
	eprops   *PropertyTable
}

// Snapshot pins the current state of g.
//
// Complexity: O(1).
// Concurrency: shared lock on g plus cloneMu for the clones themselves.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.cloneMu.Lock()
	defer g.cloneMu.Unlock()

	return &Snapshot{
		vertices: g.vertices.Clone(),
		edges:    g.edges.Clone(),
		out:      g.out.Clone(),
		in:       g.in.Clone(),
		vprops:   g.vprops.Clone(),
		eprops:   g.eprops.Clone(),
	}
}

// VertexCount returns the number of vertices in the snapshot.
func (s *Snapshot) VertexCount() int { return s.vertices.Len() }

// EdgeCount returns the number of edges in the snapshot.
func (s *Snapshot) EdgeCount() int { return s.edges.Len() }

// HasVertex reports whether id names a vertex in the snapshot.
func (s *Snapshot) HasVertex(id ID) bool { return s.vertices.Has(id) }

// HasEdge reports whether id names an edge in the snapshot.
func (s *Snapshot) HasEdge(id ID) bool { return s.edges.Has(edgeRecord{id: id}) }

// Vertex returns the vertex with the given id.
func (s *Snapshot) Vertex(id ID) (Vertex, error) {
	if !s.vertices.Has(id) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return s.vertex(id), nil
}

// Edge returns the edge with the given id.
func (s *Snapshot) Edge(id ID) (Edge, error) {
	rec, ok := s.edges.Get(edgeRecord{id: id})
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownEdge, id)
	}
	return s.edge(rec), nil
}

// Vertices lazily yields every vertex, ascending by ID.
func (s *Snapshot) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		s.vertices.Ascend(func(id ID) bool {
			return yield(s.vertex(id))
		})
	}
}

// Edges lazily yields every edge, ascending by ID.
func (s *Snapshot) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		s.edges.Ascend(func(rec edgeRecord) bool {
			return yield(s.edge(rec))
		})
	}
}

// Outgoing lazily yields the edges whose source is id.
// Complexity: O(log E + deg⁺(id)).
func (s *Snapshot) Outgoing(id ID) (iter.Seq[Edge], error) {
	if !s.vertices.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return s.adjacent(s.out, id), nil
}

// Incoming lazily yields the edges whose target is id.
// Complexity: O(log E + deg⁻(id)).
func (s *Snapshot) Incoming(id ID) (iter.Seq[Edge], error) {
	if !s.vertices.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return s.adjacent(s.in, id), nil
}

// Degree returns the in- and out-degree of id. A self-loop counts once in each.
func (s *Snapshot) Degree(id ID) (in, out int, err error) {
	if !s.vertices.Has(id) {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return countAdjacent(s.in, id), countAdjacent(s.out, id), nil
}

// VerticesWith lazily yields the vertices holding value under key,
// answered from the reverse index.
func (s *Snapshot) VerticesWith(key string, value Value) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for id := range s.vprops.Index().Scan(key, value) {
			if !yield(s.vertex(id)) {
				return
			}
		}
	}
}

// EdgesWith lazily yields the edges holding value under key,
// answered from the reverse index.
func (s *Snapshot) EdgesWith(key string, value Value) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for id := range s.eprops.Index().Scan(key, value) {
			rec, ok := s.edges.Get(edgeRecord{id: id})
			if !ok {
				continue
			}
			if !yield(s.edge(rec)) {
				return
			}
		}
	}
}

// VertexHas reports whether vertex id holds value under key.
func (s *Snapshot) VertexHas(id ID, key string, value Value) bool {
	return s.vprops.Index().Contains(id, key, value)
}

// EdgeHas reports whether edge id holds value under key.
func (s *Snapshot) EdgeHas(id ID, key string, value Value) bool {
	return s.eprops.Index().Contains(id, key, value)
}

func (s *Snapshot) vertex(id ID) Vertex {
	return Vertex{ID: id, Properties: s.vprops.Row(id)}
}

func (s *Snapshot) edge(rec edgeRecord) Edge {
	return Edge{
		ID:         rec.id,
		Label:      rec.label,
		From:       rec.from,
		To:         rec.to,
		Properties: s.eprops.Row(rec.id),
	}
}

// adjacent yields the edges recorded under vertex id in tree.
func (s *Snapshot) adjacent(tree *btree.BTreeG[adjEntry], id ID) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for eid := range adjacentIDs(tree, id) {
			rec, ok := s.edges.Get(edgeRecord{id: eid})
			if !ok {
				continue
			}
			if !yield(s.edge(rec)) {
				return
			}
		}
	}
}

// adjacentIDs yields the edge IDs recorded under vertex id, ascending.
func adjacentIDs(tree *btree.BTreeG[adjEntry], id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		tree.AscendGreaterOrEqual(adjEntry{vertex: id}, func(a adjEntry) bool {
			if a.vertex != id {
				return false
			}
			return yield(a.edge)
		})
	}
}

func countAdjacent(tree *btree.BTreeG[adjEntry], id ID) int {
	n := 0
	for range adjacentIDs(tree, id) {
		n++
	}
	return n
}
