// SPDX-License-Identifier: MIT
// File: dot.go
// Role: Graphviz export (DOT text, SVG rendering).

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/propgraph/core"
)

// ErrRender wraps every Graphviz failure.
var ErrRender = errors.New("render: graphviz")

// Options configures DOT export.
type Options struct {
	// LabelKey names the vertex property shown as the node label.
	// Vertices without it, or an empty LabelKey, show their ID.
	LabelKey string

	// Detailed appends every property to node and edge labels.
	Detailed bool
}

// DOT converts g to Graphviz DOT format. Node identifiers are the vertex IDs.
func DOT(g *core.Graph, opts Options) string {
	return DOTSnapshot(g.Snapshot(), opts)
}

// DOTSnapshot is DOT over an already pinned snapshot.
func DOTSnapshot(snap *core.Snapshot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for v := range snap.Vertices() {
		fmt.Fprintf(&buf, "  %d [label=%s];\n", v.ID, dotQuote(vertexLabel(v, opts)))
	}

	buf.WriteString("\n")
	for e := range snap.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d [label=%s];\n", e.From, e.To, dotQuote(edgeLabel(e, opts)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(v core.Vertex, opts Options) string {
	label := fmt.Sprint(v.ID)
	if opts.LabelKey != "" {
		if val, ok := v.Properties.First(opts.LabelKey); ok {
			label = fmt.Sprint(val)
		}
	}
	if !opts.Detailed {
		return label
	}
	return label + "\n" + propertyLines(v.Properties)
}

func edgeLabel(e core.Edge, opts Options) string {
	if !opts.Detailed || e.Properties.Len() == 0 {
		return e.Label
	}
	return e.Label + "\n" + propertyLines(e.Properties)
}

// dotEscaper escapes a label for a DOT quoted string. Only backslash, quote
// and line breaks need escaping; every other rune is written as is.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// dotQuote returns s as a DOT double-quoted string.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func propertyLines(p core.Properties) string {
	parts := make([]string, 0, p.Len())
	for _, k := range p.Keys() {
		parts = append(parts, fmt.Sprintf("%s: %v", k, p.Get(k)))
	}
	return strings.Join(parts, "\n")
}

// SVG renders DOT text to SVG using the embedded Graphviz runtime.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: init: %v", ErrRender, err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("%w: parse DOT: %v", ErrRender, err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("%w: render: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
