// SPDX-License-Identifier: MIT
// Package traversal_test contains fixtures shared by traversal tests.

package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

const (
	KeyName   = "name"
	KeyWeight = "weight"

	LabelEdge1 = "edge_1"
	LabelEdge2 = "edge_2"
	LabelKnows = "knows"

	NameV1 = "v1"
	NameV2 = "v2"
	NameV3 = "v3"
)

// chain is the toy graph v1 -edge_1-> v2 -edge_2-> v3.
type chain struct {
	g          *core.Graph
	v1, v2, v3 core.ID
	e1, e2     core.ID
}

// newChain BUILDS the v1 -> v2 -> v3 fixture; edge_1 carries weight 1, edge_2 weight 2.
func newChain(t *testing.T) chain {
	t.Helper()

	g := core.NewGraph(core.WithName("chain"))
	c := chain{g: g}
	c.v1 = g.AddVertex(core.Prop(KeyName, NameV1))
	c.v2 = g.AddVertex(core.Prop(KeyName, NameV2))
	c.v3 = g.AddVertex(core.Prop(KeyName, NameV3))

	var err error
	c.e1, err = g.AddEdge(LabelEdge1, c.v1, c.v2, core.Prop(KeyWeight, 1))
	require.NoError(t, err)
	c.e2, err = g.AddEdge(LabelEdge2, c.v2, c.v3, core.Prop(KeyWeight, 2))
	require.NoError(t, err)

	return c
}

// names projects vertices to their first "name" value.
func names(vs []core.Vertex) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		n, _ := v.Properties.First(KeyName)
		s, _ := n.(string)
		out = append(out, s)
	}
	return out
}
