// Package traversal composes lazy, Gremlin-style walks over a core.Graph.
//
// A traversal starts at Source.V() or Source.E(), which pin a core.Snapshot,
// and is extended by steps. Steps never evaluate anything: they wrap the
// previous iter.Seq. Work happens only when a terminal (ToList, Count,
// First, IDs) runs or when the caller ranges over All().
//
//	src := traversal.New(g)
//	src.V().Has("name", "v2").OutE().InV().ToList()
//
// Semantics:
//
//   - Snapshot-at-start: every step of one traversal reads the snapshot pinned
//     by V()/E(). Writes made afterwards are not observed and never cause an error.
//   - Restartable: ranging a traversal twice yields the same items again.
//   - Ordered: V()/E() ascend by ID; adjacency steps ascend by edge ID per vertex.
//   - Has directly on V()/E() is answered from the reverse index; anywhere
//     else it filters the incoming items.
//   - Dedup is the only step holding state, a seen-set rebuilt per iteration.
//
// Vertex steps: Has, HasKey, HasID, Filter, Limit, Dedup, OutE, InE, BothE,
// Out, In, Repeat.
//
// Edge steps: Has, HasKey, HasLabel, Filter, Limit, Dedup, OutV, InV.
package traversal
