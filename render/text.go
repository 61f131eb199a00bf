// SPDX-License-Identifier: MIT
// File: text.go
// Role: Human-readable structural dump of a graph, for debugging and the CLI.
// Determinism:
//   - Output depends only on graph contents: vertices ascend by ID, edges by
//     ID per vertex, property keys are sorted.

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/propgraph/core"
)

// Text writes one block per vertex: the vertex and its properties, then one
// indented line per outgoing edge.
//
//	graph chain: 3 vertices, 2 edges
//	(1) {name: [v1]}
//	  -[edge_1 #4]-> (2) {}
func Text(w io.Writer, g *core.Graph) error {
	return TextSnapshot(w, g.Name(), g.Snapshot())
}

// TextSnapshot is Text over an already pinned snapshot.
func TextSnapshot(w io.Writer, name string, snap *core.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s: %d vertices, %d edges\n", name, snap.VertexCount(), snap.EdgeCount())
	for v := range snap.Vertices() {
		fmt.Fprintf(bw, "(%d) %s\n", v.ID, v.Properties)
		out, err := snap.Outgoing(v.ID)
		if err != nil {
			return err
		}
		for e := range out {
			fmt.Fprintf(bw, "  -[%s #%d]-> (%d) %s\n", e.Label, e.ID, e.To, e.Properties)
		}
	}
	return bw.Flush()
}
