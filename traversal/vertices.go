// SPDX-License-Identifier: MIT
// File: vertices.go
// Role: Vertex-valued traversal steps and terminals.
// Determinism:
//   - Steps preserve the order of their input; adjacency expands in ascending edge ID.
// AI-HINT (file):
//   - A step only wraps the previous sequence. Nothing is read until a
//     terminal runs or the caller ranges over All().
//   - Dedup is the only step that keeps per-iteration state (its seen-set).

package traversal

import (
	"iter"
	"slices"

	"github.com/katalvlaran/propgraph/core"
)

// Vertices is a lazy, restartable sequence of vertices read from one snapshot.
// The zero value is an empty traversal.
type Vertices struct {
	snap *core.Snapshot
	seq  iter.Seq[core.Vertex]
	// root marks the unfiltered V() sequence, whose Has is served by the index.
	root bool
}

func (t Vertices) with(seq iter.Seq[core.Vertex]) Vertices {
	return Vertices{snap: t.snap, seq: seq}
}

// items returns the sequence; the zero Vertices yields nothing.
func (t Vertices) items() iter.Seq[core.Vertex] {
	if t.seq == nil {
		return empty[core.Vertex]()
	}
	return t.seq
}

// Has keeps the vertices holding value under key.
// On an unfiltered V() the candidates come straight from the reverse index.
func (t Vertices) Has(key string, value core.Value) Vertices {
	if t.root {
		return t.with(t.snap.VerticesWith(key, value))
	}
	snap := t.snap
	return t.Filter(func(v core.Vertex) bool {
		return snap.VertexHas(v.ID, key, value)
	})
}

// HasKey keeps the vertices holding at least one value under key.
func (t Vertices) HasKey(key string) Vertices {
	return t.Filter(func(v core.Vertex) bool { return v.Properties.Has(key) })
}

// HasID keeps the vertices whose ID is among ids.
// On an unfiltered V() the IDs are resolved directly, ascending, unknown IDs skipped.
func (t Vertices) HasID(ids ...core.ID) Vertices {
	if t.root {
		sorted := slices.Clone(ids)
		slices.Sort(sorted)
		sorted = slices.Compact(sorted)
		snap := t.snap
		return t.with(mapSeq(slices.Values(sorted), func(id core.ID) (core.Vertex, bool) {
			v, err := snap.Vertex(id)
			return v, err == nil
		}))
	}
	return t.Filter(func(v core.Vertex) bool { return slices.Contains(ids, v.ID) })
}

// Filter keeps the vertices for which pred returns true.
func (t Vertices) Filter(pred func(core.Vertex) bool) Vertices {
	return t.with(filter(t.items(), pred))
}

// Limit keeps at most n vertices.
func (t Vertices) Limit(n int) Vertices {
	return t.with(take(t.items(), n))
}

// Dedup drops vertices already yielded earlier in the same iteration.
func (t Vertices) Dedup() Vertices {
	return t.with(dedupBy(t.items(), func(v core.Vertex) core.ID { return v.ID }))
}

// OutE moves to the outgoing edges of every vertex, optionally restricted to labels.
func (t Vertices) OutE(labels ...string) Edges {
	snap := t.snap
	seq := flatMap(t.items(), func(v core.Vertex) iter.Seq[core.Edge] {
		return adjacent(snap.Outgoing, v.ID)
	})
	return Edges{snap: snap, seq: withLabels(seq, labels)}
}

// InE moves to the incoming edges of every vertex, optionally restricted to labels.
func (t Vertices) InE(labels ...string) Edges {
	snap := t.snap
	seq := flatMap(t.items(), func(v core.Vertex) iter.Seq[core.Edge] {
		return adjacent(snap.Incoming, v.ID)
	})
	return Edges{snap: snap, seq: withLabels(seq, labels)}
}

// BothE moves to the outgoing then incoming edges of every vertex.
// A self-loop is yielded twice, once per direction.
func (t Vertices) BothE(labels ...string) Edges {
	snap := t.snap
	seq := flatMap(t.items(), func(v core.Vertex) iter.Seq[core.Edge] {
		return concat(adjacent(snap.Outgoing, v.ID), adjacent(snap.Incoming, v.ID))
	})
	return Edges{snap: snap, seq: withLabels(seq, labels)}
}

// Out moves to the targets of the outgoing edges. Shorthand for OutE(labels...).InV().
func (t Vertices) Out(labels ...string) Vertices {
	return t.OutE(labels...).InV()
}

// In moves to the sources of the incoming edges. Shorthand for InE(labels...).OutV().
func (t Vertices) In(labels ...string) Vertices {
	return t.InE(labels...).OutV()
}

// Repeat applies step to the traversal times times.
// times <= 0 returns t unchanged.
func (t Vertices) Repeat(times int, step func(Vertices) Vertices) Vertices {
	for range times {
		t = step(t)
	}
	return t
}

// All returns the underlying lazy sequence.
func (t Vertices) All() iter.Seq[core.Vertex] { return t.items() }

// ToList evaluates the traversal into a slice.
func (t Vertices) ToList() []core.Vertex { return toList(t.items()) }

// Count evaluates the traversal and returns the number of vertices.
func (t Vertices) Count() int { return count(t.items()) }

// First returns the first vertex, reading nothing past it.
func (t Vertices) First() (core.Vertex, bool) { return first(t.items()) }

// IDs evaluates the traversal into the vertex IDs.
func (t Vertices) IDs() []core.ID {
	return toList(mapSeq(t.items(), func(v core.Vertex) (core.ID, bool) { return v.ID, true }))
}

// adjacent adapts Snapshot.Outgoing/Incoming. The vertex was read from the
// same snapshot, so the unknown-vertex error cannot occur; an empty sequence
// covers it anyway.
func adjacent(fn func(core.ID) (iter.Seq[core.Edge], error), id core.ID) iter.Seq[core.Edge] {
	seq, err := fn(id)
	if err != nil {
		return empty[core.Edge]()
	}
	return seq
}
