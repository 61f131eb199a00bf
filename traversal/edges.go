// SPDX-License-Identifier: MIT
// File: edges.go
// Role: Edge-valued traversal steps and terminals.

package traversal

import (
	"iter"
	"slices"

	"github.com/katalvlaran/propgraph/core"
)

// Edges is a lazy, restartable sequence of edges read from one snapshot.
// The zero value is an empty traversal.
type Edges struct {
	snap *core.Snapshot
	seq  iter.Seq[core.Edge]
	root bool
}

func (t Edges) with(seq iter.Seq[core.Edge]) Edges {
	return Edges{snap: t.snap, seq: seq}
}

// items returns the sequence; the zero Edges yields nothing.
func (t Edges) items() iter.Seq[core.Edge] {
	if t.seq == nil {
		return empty[core.Edge]()
	}
	return t.seq
}

// Has keeps the edges holding value under key.
// On an unfiltered E() the candidates come straight from the reverse index.
func (t Edges) Has(key string, value core.Value) Edges {
	if t.root {
		return t.with(t.snap.EdgesWith(key, value))
	}
	snap := t.snap
	return t.Filter(func(e core.Edge) bool {
		return snap.EdgeHas(e.ID, key, value)
	})
}

// HasKey keeps the edges holding at least one value under key.
func (t Edges) HasKey(key string) Edges {
	return t.Filter(func(e core.Edge) bool { return e.Properties.Has(key) })
}

// HasLabel keeps the edges whose label is one of labels.
func (t Edges) HasLabel(labels ...string) Edges {
	return t.Filter(func(e core.Edge) bool { return slices.Contains(labels, e.Label) })
}

// Filter keeps the edges for which pred returns true.
func (t Edges) Filter(pred func(core.Edge) bool) Edges {
	return t.with(filter(t.items(), pred))
}

// Limit keeps at most n edges.
func (t Edges) Limit(n int) Edges {
	return t.with(take(t.items(), n))
}

// Dedup drops edges already yielded earlier in the same iteration.
func (t Edges) Dedup() Edges {
	return t.with(dedupBy(t.items(), func(e core.Edge) core.ID { return e.ID }))
}

// OutV moves to the source vertex of every edge.
func (t Edges) OutV() Vertices {
	snap := t.snap
	return Vertices{snap: snap, seq: mapSeq(t.items(), func(e core.Edge) (core.Vertex, bool) {
		v, err := snap.Vertex(e.From)
		return v, err == nil
	})}
}

// InV moves to the target vertex of every edge.
func (t Edges) InV() Vertices {
	snap := t.snap
	return Vertices{snap: snap, seq: mapSeq(t.items(), func(e core.Edge) (core.Vertex, bool) {
		v, err := snap.Vertex(e.To)
		return v, err == nil
	})}
}

// All returns the underlying lazy sequence.
func (t Edges) All() iter.Seq[core.Edge] { return t.items() }

// ToList evaluates the traversal into a slice.
func (t Edges) ToList() []core.Edge { return toList(t.items()) }

// Count evaluates the traversal and returns the number of edges.
func (t Edges) Count() int { return count(t.items()) }

// First returns the first edge, reading nothing past it.
func (t Edges) First() (core.Edge, bool) { return first(t.items()) }

// IDs evaluates the traversal into the edge IDs.
func (t Edges) IDs() []core.ID {
	return toList(mapSeq(t.items(), func(e core.Edge) (core.ID, bool) { return e.ID, true }))
}

// withLabels restricts seq to labels; no labels means no restriction.
func withLabels(seq iter.Seq[core.Edge], labels []string) iter.Seq[core.Edge] {
	if len(labels) == 0 {
		return seq
	}
	return filter(seq, func(e core.Edge) bool { return slices.Contains(labels, e.Label) })
}
