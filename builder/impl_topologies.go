// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// impl_topologies.go — deterministic directed topologies.
//
// Edge direction follows vertex index: i → i+1 for Path/Cycle, center → leaf
// for Star, every ordered pair i≠j for Complete.

package builder

import (
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds v0 → v1 → … → v(n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds a Path closed by v(n-1) → v0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := range n {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds center v0 with spokes v0 → vi for i in [1, n). Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for _, leaf := range ids[1:] {
			if err := link(g, cfg, methodStar, ids[0], leaf); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds an edge for every ordered pair of distinct vertices. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := range n {
			for j := range n {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
