// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs
//     (same IDs, same properties, same adjacency order).
//   - Each constructor adds its own vertices; composing two constructors yields
//     disjoint components unless a constructor documents otherwise.
//
// AI-Hints:
//   - Use WithSeed(...) to freeze RandomSparse.
//   - Vertex names restart at index 0 in every constructor; look vertices up
//     by name only when one constructor built the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters before mutating and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies every
// constructor in order. The first failure is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// addVertices creates n named vertices and returns their IDs in index order.
func addVertices(g *core.Graph, cfg builderConfig, n int) []core.ID {
	ids := make([]core.ID, n)
	for i := range n {
		ids[i] = g.AddVertex(core.Prop(cfg.nameKey, cfg.nameFn(i)))
	}
	return ids
}

// link adds one edge labeled cfg.label, wrapping failures with method context.
func link(g *core.Graph, cfg builderConfig, method string, from, to core.ID) error {
	if _, err := g.AddEdge(cfg.label, from, to); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, from, to, ErrConstructFailed, err)
	}
	return nil
}
