// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import "github.com/google/btree"

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Name              string // graph name used in logs
	VertexCount       int    // live vertices
	EdgeCount         int    // live edges
	SelfLoopCount     int    // edges with From == To
	LabelCounts       map[string]int
	VertexPropOwners  int // vertices with at least one property
	EdgePropOwners    int // edges with at least one property
	VertexIndexFacts  int // (key, value, vertex) entries in the vertex index
	EdgeIndexFacts    int // (key, value, edge) entries in the edge index
	LastIssuedID      ID  // most recent identifier handed out
	MaxOutDegreeOwner ID  // vertex with the largest out-degree (0 when no edges)
	MaxOutDegree      int
}

// Stats produces a read-only summary of the graph.
//
// Implementation:
//   - Stage 1: Pin a Snapshot (shared lock, O(1)).
//   - Stage 2: Scan the snapshot's edge catalog and out-adjacency once.
//
// Complexity: O(V + E) without holding the graph lock during the scan.
func (g *Graph) Stats() Stats {
	snap := g.Snapshot()
	st := Stats{
		Name:             g.name,
		VertexCount:      snap.vertices.Len(),
		EdgeCount:        snap.edges.Len(),
		LabelCounts:      make(map[string]int),
		VertexPropOwners: snap.vprops.Owners(),
		EdgePropOwners:   snap.eprops.Owners(),
		VertexIndexFacts: snap.vprops.Index().Len(),
		EdgeIndexFacts:   snap.eprops.Index().Len(),
		LastIssuedID:     g.ids.Last(),
	}

	snap.edges.Ascend(func(rec edgeRecord) bool {
		st.LabelCounts[rec.label]++
		if rec.from == rec.to {
			st.SelfLoopCount++
		}
		return true
	})
	st.MaxOutDegreeOwner, st.MaxOutDegree = maxRun(snap.out)

	return st
}

// maxRun returns the vertex with the longest run of entries in an adjacency
// tree, ties going to the smaller ID.
func maxRun(tree *btree.BTreeG[adjEntry]) (ID, int) {
	var best, cur ID
	bestN, curN := 0, 0
	tree.Ascend(func(a adjEntry) bool {
		if a.vertex != cur {
			cur, curN = a.vertex, 0
		}
		curN++
		if curN > bestN {
			best, bestN = cur, curN
		}
		return true
	})
	return best, bestN
}
