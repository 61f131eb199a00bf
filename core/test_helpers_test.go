// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and small helpers shared by core tests.
//
// Purpose:
//   - Provide deterministic fixtures (the v1 -> v2 -> v3 chain) for core.Graph.
//   - Keep goroutines free of *testing.T (errors travel back through errgroup).

package core_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

// Common property keys and labels used across core tests.
const (
	KeyName   = "name"
	KeyWeight = "weight"
	KeyTag    = "tag"

	LabelEdge1 = "edge_1"
	LabelEdge2 = "edge_2"
	LabelKnows = "knows"

	NameV1 = "v1"
	NameV2 = "v2"
	NameV3 = "v3"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NStarLeaves     = 1000
)

// chain is the toy graph v1 -edge_1-> v2 -edge_2-> v3.
type chain struct {
	g          *core.Graph
	v1, v2, v3 core.ID
	e1, e2     core.ID
}

// newChain BUILDS the v1 -> v2 -> v3 fixture and fails the test on any error.
func newChain(t *testing.T) chain {
	t.Helper()

	g := core.NewGraph(core.WithName("chain"))
	c := chain{g: g}
	c.v1 = g.AddVertex(core.Prop(KeyName, NameV1))
	c.v2 = g.AddVertex(core.Prop(KeyName, NameV2))
	c.v3 = g.AddVertex(core.Prop(KeyName, NameV3))

	var err error
	c.e1, err = g.AddEdge(LabelEdge1, c.v1, c.v2)
	require.NoError(t, err, "AddEdge(edge_1, v1, v2)")
	c.e2, err = g.AddEdge(LabelEdge2, c.v2, c.v3)
	require.NoError(t, err, "AddEdge(edge_2, v2, v3)")

	return c
}

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// mustEdges returns a drain for an (iter.Seq[Edge], error) pair that fails on error.
// Usage: mustEdges(t)(g.Outgoing(v)).
func mustEdges(t *testing.T) func(iter.Seq[core.Edge], error) []core.Edge {
	t.Helper()
	return func(seq iter.Seq[core.Edge], err error) []core.Edge {
		t.Helper()
		require.NoError(t, err)
		return collect(seq)
	}
}

// edgeIDs projects edges to their IDs.
func edgeIDs(es []core.Edge) []core.ID {
	out := make([]core.ID, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}

// vertexIDs projects vertices to their IDs.
func vertexIDs(vs []core.Vertex) []core.ID {
	out := make([]core.ID, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
