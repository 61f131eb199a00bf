// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in identity, adjacency and cascade semantics.
//   - Lock in atomicity of failed calls (no partial mutation).
//   - Lock in agreement between property tables and reverse indices.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

// TestGraph_VertexIdentity VERIFIES IDs are distinct, stable and never reused.
func TestGraph_VertexIdentity(t *testing.T) {
	g := core.NewGraph()

	// Identical properties on purpose: identity is the ID, not content.
	a := g.AddVertex(core.Prop(KeyName, "same"))
	b := g.AddVertex(core.Prop(KeyName, "same"))
	require.NotEqual(t, a, b, "distinct vertices must get distinct IDs")
	require.NotZero(t, a)
	require.NotZero(t, b)

	c := g.AddVertex()
	_, err := g.AddEdge(LabelKnows, a, c)
	require.NoError(t, err)
	require.NoError(t, g.DropVertex(c))

	// a and b are still addressable by the same IDs after unrelated mutations.
	va, err := g.Vertex(a)
	require.NoError(t, err)
	require.Equal(t, a, va.ID)
	vb, err := g.Vertex(b)
	require.NoError(t, err)
	require.Equal(t, b, vb.ID)

	// c is never handed out again.
	d := g.AddVertex()
	require.Greater(t, d, c, "IDs must keep increasing after a drop")
	require.False(t, g.HasVertex(c))
}

// TestGraph_AddEdgeUnknownVertex VERIFIES a failed AddEdge leaves counts and allocator untouched.
func TestGraph_AddEdgeUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	v := g.AddVertex()
	const never core.ID = 999

	before := g.Stats()

	_, err := g.AddEdge(LabelKnows, v, never)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.AddEdge(LabelKnows, never, v)
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	after := g.Stats()
	require.Equal(t, before.VertexCount, after.VertexCount)
	require.Equal(t, before.EdgeCount, after.EdgeCount)
	require.Equal(t, before.LastIssuedID, after.LastIssuedID, "failed AddEdge must not allocate")

	out := mustEdges(t)(g.Outgoing(v))
	require.Empty(t, out, "failed AddEdge must not touch adjacency")
}

// TestGraph_Adjacency VERIFIES Outgoing/Incoming after a single AddEdge.
func TestGraph_Adjacency(t *testing.T) {
	g := core.NewGraph()
	v1 := g.AddVertex()
	v2 := g.AddVertex()
	_, err := g.AddEdge(LabelEdge1, v1, v2)
	require.NoError(t, err)

	out := mustEdges(t)(g.Outgoing(v1))
	require.Len(t, out, 1)
	require.Equal(t, LabelEdge1, out[0].Label)
	require.Equal(t, v2, out[0].To)

	in := mustEdges(t)(g.Incoming(v2))
	require.Len(t, in, 1)
	require.Equal(t, LabelEdge1, in[0].Label)
	require.Equal(t, v1, in[0].From)

	require.Empty(t, mustEdges(t)(g.Incoming(v1)))
	require.Empty(t, mustEdges(t)(g.Outgoing(v2)))

	in1, out1, err := g.Degree(v1)
	require.NoError(t, err)
	require.Equal(t, 0, in1)
	require.Equal(t, 1, out1)
}

// TestGraph_AdjacencyOrderAndMultiEdges VERIFIES per-vertex order is edge creation order,
// parallel edges are kept apart and self-loops show up on both sides.
func TestGraph_AdjacencyOrderAndMultiEdges(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()

	e1, err := g.AddEdge(LabelKnows, a, b)
	require.NoError(t, err)
	loop, err := g.AddEdge("self", a, a)
	require.NoError(t, err)
	e2, err := g.AddEdge(LabelKnows, a, b)
	require.NoError(t, err)

	require.Equal(t, []core.ID{e1, loop, e2}, edgeIDs(mustEdges(t)(g.Outgoing(a))))
	require.Equal(t, []core.ID{loop}, edgeIDs(mustEdges(t)(g.Incoming(a))))
	require.Equal(t, []core.ID{e1, e2}, edgeIDs(mustEdges(t)(g.Incoming(b))))

	in, out, err := g.Degree(a)
	require.NoError(t, err)
	require.Equal(t, 1, in)
	require.Equal(t, 3, out)

	// Dropping the vertex with a self-loop must not double-count or fail.
	require.NoError(t, g.DropVertex(a))
	require.Zero(t, g.EdgeCount())
}

// TestGraph_DropVertexCascade VERIFIES incident edges disappear with their vertex.
func TestGraph_DropVertexCascade(t *testing.T) {
	c := newChain(t)
	g := c.g
	require.NoError(t, g.SetEdgeProperty(c.e1, KeyWeight, 3))

	require.NoError(t, g.DropVertex(c.v2))

	require.False(t, g.HasVertex(c.v2))
	require.False(t, g.HasEdge(c.e1), "edge_1 (v1->v2) must be cascaded")
	require.False(t, g.HasEdge(c.e2), "edge_2 (v2->v3) must be cascaded")
	require.Equal(t, 2, g.VertexCount())
	require.Zero(t, g.EdgeCount())

	require.Empty(t, mustEdges(t)(g.Outgoing(c.v1)))
	require.Empty(t, mustEdges(t)(g.Incoming(c.v3)))

	_, err := g.Outgoing(c.v2)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.Incoming(c.v2)
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	// Index entries of the cascaded vertex and edge are gone too.
	require.Empty(t, g.LookupVertices(KeyName, NameV2))
	require.Empty(t, g.LookupEdges(KeyWeight, 3))

	require.ErrorIs(t, g.DropVertex(c.v2), core.ErrUnknownVertex)
}

// TestGraph_DropEdge VERIFIES DropEdge unlinks both endpoints and rejects unknown IDs.
func TestGraph_DropEdge(t *testing.T) {
	c := newChain(t)

	require.NoError(t, c.g.DropEdge(c.e1))
	require.Empty(t, mustEdges(t)(c.g.Outgoing(c.v1)))
	require.Empty(t, mustEdges(t)(c.g.Incoming(c.v2)))
	require.Len(t, mustEdges(t)(c.g.Outgoing(c.v2)), 1, "edge_2 must survive")

	require.ErrorIs(t, c.g.DropEdge(c.e1), core.ErrUnknownEdge)
	_, err := c.g.Edge(c.e1)
	require.ErrorIs(t, err, core.ErrUnknownEdge)
	// A vertex ID is not an edge ID.
	require.ErrorIs(t, c.g.DropEdge(c.v1), core.ErrUnknownEdge)
}

// TestGraph_PropertyIndexAgreement VERIFIES reads through the table and the index agree.
func TestGraph_PropertyIndexAgreement(t *testing.T) {
	g := core.NewGraph()
	v := g.AddVertex()

	require.NoError(t, g.SetVertexProperty(v, KeyTag, "x"))
	require.Equal(t, []core.ID{v}, g.LookupVertices(KeyTag, "x"))
	vals, err := g.VertexProperty(v, KeyTag)
	require.NoError(t, err)
	require.Equal(t, []core.Value{"x"}, vals)

	require.NoError(t, g.RemoveVertexProperty(v, KeyTag))
	require.Empty(t, g.LookupVertices(KeyTag, "x"))
	vals, err = g.VertexProperty(v, KeyTag)
	require.NoError(t, err)
	require.Empty(t, vals)

	// Removing again is a no-op, not an error.
	require.NoError(t, g.RemoveVertexProperty(v, KeyTag))

	require.ErrorIs(t, g.SetVertexProperty(999, KeyTag, "x"), core.ErrUnknownVertex)
	require.ErrorIs(t, g.RemoveVertexProperty(999, KeyTag), core.ErrUnknownVertex)
	_, err = g.VertexProperty(999, KeyTag)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

// TestGraph_MultiValuedProperties VERIFIES values append in order and are all indexed.
func TestGraph_MultiValuedProperties(t *testing.T) {
	g := core.NewGraph()
	v := g.AddVertex(core.Prop(KeyTag, "a"), core.Prop(KeyTag, "b"))
	require.NoError(t, g.SetVertexProperty(v, KeyTag, "c"))

	vals, err := g.VertexProperty(v, KeyTag)
	require.NoError(t, err)
	require.Equal(t, []core.Value{"a", "b", "c"}, vals)
	for _, want := range []string{"a", "b", "c"} {
		require.Equal(t, []core.ID{v}, g.LookupVertices(KeyTag, want), "index must hold %q", want)
	}

	require.NoError(t, g.RemoveVertexProperty(v, KeyTag))
	for _, gone := range []string{"a", "b", "c"} {
		require.Empty(t, g.LookupVertices(KeyTag, gone))
	}
}

// TestGraph_TypedValues VERIFIES values of different types never collide in the index.
func TestGraph_TypedValues(t *testing.T) {
	g := core.NewGraph()
	s := g.AddVertex(core.Prop(KeyWeight, "1"))
	i := g.AddVertex(core.Prop(KeyWeight, 1))

	require.Equal(t, []core.ID{s}, g.LookupVertices(KeyWeight, "1"))
	require.Equal(t, []core.ID{i}, g.LookupVertices(KeyWeight, 1))
	require.Empty(t, g.LookupVertices(KeyWeight, int64(1)))
}

// TestGraph_EdgeProperties VERIFIES edge-side property and index operations.
func TestGraph_EdgeProperties(t *testing.T) {
	c := newChain(t)
	e, err := c.g.AddEdge(LabelKnows, c.v1, c.v3, core.Prop(KeyWeight, 7))
	require.NoError(t, err)

	got, err := c.g.Edge(e)
	require.NoError(t, err)
	w, ok := got.Properties.First(KeyWeight)
	require.True(t, ok)
	require.Equal(t, 7, w)
	require.Equal(t, []core.ID{e}, c.g.LookupEdges(KeyWeight, 7))

	require.NoError(t, c.g.RemoveEdgeProperty(e, KeyWeight))
	require.Empty(t, c.g.LookupEdges(KeyWeight, 7))
	vals, err := c.g.EdgeProperty(e, KeyWeight)
	require.NoError(t, err)
	require.Empty(t, vals)

	require.ErrorIs(t, c.g.SetEdgeProperty(999, KeyWeight, 1), core.ErrUnknownEdge)
	require.ErrorIs(t, c.g.RemoveEdgeProperty(999, KeyWeight), core.ErrUnknownEdge)
	_, err = c.g.EdgeProperty(999, KeyWeight)
	require.ErrorIs(t, err, core.ErrUnknownEdge)
}

// TestGraph_EnumerationIdempotent VERIFIES repeated enumeration without mutation is identical.
func TestGraph_EnumerationIdempotent(t *testing.T) {
	c := newChain(t)

	first := collect(c.g.Vertices())
	second := collect(c.g.Vertices())
	require.Equal(t, first, second)
	require.Equal(t, []core.ID{c.v1, c.v2, c.v3}, vertexIDs(first), "creation order")

	edgesA := collect(c.g.Edges())
	edgesB := collect(c.g.Edges())
	require.Equal(t, edgesA, edgesB)
	require.Equal(t, []core.ID{c.e1, c.e2}, edgeIDs(edgesA))

	// The same sequence value is restartable.
	seq := c.g.Vertices()
	require.Equal(t, collect(seq), collect(seq))
}

// TestGraph_CloneAndClear VERIFIES Clone independence and Clear keeping the allocator.
func TestGraph_CloneAndClear(t *testing.T) {
	c := newChain(t)
	clone := c.g.Clone()

	require.NoError(t, c.g.DropVertex(c.v1))
	require.True(t, clone.HasVertex(c.v1), "clone must not observe source mutations")
	require.Equal(t, []core.ID{c.v1}, clone.LookupVertices(KeyName, NameV1))

	fresh := clone.AddVertex()
	require.Greater(t, fresh, c.e2, "clone continues the source ID sequence")

	last := c.g.Stats().LastIssuedID
	c.g.Clear()
	require.Zero(t, c.g.VertexCount())
	require.Zero(t, c.g.EdgeCount())
	require.Empty(t, c.g.LookupVertices(KeyName, NameV2))
	require.Greater(t, c.g.AddVertex(), last, "Clear must not reset the allocator")
	require.Equal(t, 4, clone.VertexCount())
}

// TestGraph_Stats VERIFIES the diagnostic summary.
func TestGraph_Stats(t *testing.T) {
	c := newChain(t)
	_, err := c.g.AddEdge("self", c.v2, c.v2)
	require.NoError(t, err)

	st := c.g.Stats()
	require.Equal(t, "chain", st.Name)
	require.Equal(t, 3, st.VertexCount)
	require.Equal(t, 3, st.EdgeCount)
	require.Equal(t, 1, st.SelfLoopCount)
	require.Equal(t, map[string]int{LabelEdge1: 1, LabelEdge2: 1, "self": 1}, st.LabelCounts)
	require.Equal(t, 3, st.VertexPropOwners)
	require.Equal(t, 3, st.VertexIndexFacts)
	require.Equal(t, c.v2, st.MaxOutDegreeOwner)
	require.Equal(t, 2, st.MaxOutDegree)
}

// TestGraph_ReferenceValuesMatchByIdentity VERIFIES pointer and map values
// match only the very same reference, never an equal-looking copy.
func TestGraph_ReferenceValuesMatchByIdentity(t *testing.T) {
	type point struct{ X int }

	g := core.NewGraph()
	p1, p2 := &point{X: 1}, &point{X: 1}
	a := g.AddVertex(core.Prop(KeyTag, p1))
	b := g.AddVertex(core.Prop(KeyTag, p2))

	require.Equal(t, []core.ID{a}, g.LookupVertices(KeyTag, p1))
	require.Equal(t, []core.ID{b}, g.LookupVertices(KeyTag, p2))
	require.Empty(t, g.LookupVertices(KeyTag, &point{X: 1}))

	m := map[string]int{"k": 1}
	c := g.AddVertex(core.Prop(KeyTag, m))
	require.Equal(t, []core.ID{c}, g.LookupVertices(KeyTag, m))
	require.Empty(t, g.LookupVertices(KeyTag, map[string]int{"k": 1}))

	// Removal still finds the entry it indexed.
	require.NoError(t, g.RemoveVertexProperty(a, KeyTag))
	require.Empty(t, g.LookupVertices(KeyTag, p1))

	// Plain values keep matching by content.
	d := g.AddVertex(core.Prop(KeyTag, point{X: 1}))
	require.Equal(t, []core.ID{d}, g.LookupVertices(KeyTag, point{X: 1}))
}
