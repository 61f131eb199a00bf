// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/seed"
)

//go:embed demo.toml
var demoSeed []byte

// loadGraph builds the graph described by the seed at path, wiring the
// context logger into it.
func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	doc, err := seed.Load(path)
	if err != nil {
		return nil, err
	}
	return buildGraph(ctx, doc)
}

func buildGraph(ctx context.Context, doc *seed.Document) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	g, ids, err := doc.Build(core.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	logger.Debug("graph loaded", "name", g.Name(), "vertices", len(ids), "edges", g.EdgeCount())
	return g, nil
}
