// SPDX-License-Identifier: MIT
// File: source.go
// Role: Entry points of the traversal engine (New, From, V, E).
// Concurrency:
//   - V() and E() pin a core.Snapshot; every later step reads only that snapshot,
//     so a traversal never blocks writers and never observes their effects.

package traversal

import "github.com/katalvlaran/propgraph/core"

// Source starts traversals over a graph or over an already pinned snapshot.
type Source struct {
	g    *core.Graph
	snap *core.Snapshot
}

// New returns a Source bound to g. Each V() or E() call pins a fresh snapshot.
func New(g *core.Graph) Source {
	return Source{g: g}
}

// From returns a Source bound to snap. Every traversal it starts reads snap.
func From(snap *core.Snapshot) Source {
	return Source{snap: snap}
}

// pin returns the snapshot a new traversal reads from.
func (s Source) pin() *core.Snapshot {
	if s.snap != nil {
		return s.snap
	}
	return s.g.Snapshot()
}

// V starts a traversal over every vertex, ascending by ID.
func (s Source) V() Vertices {
	snap := s.pin()
	return Vertices{snap: snap, seq: snap.Vertices(), root: true}
}

// E starts a traversal over every edge, ascending by ID.
func (s Source) E() Edges {
	snap := s.pin()
	return Edges{snap: snap, seq: snap.Edges(), root: true}
}
