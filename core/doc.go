// Package core provides a thread-safe, in-memory property-graph store.
//
// The Graph G = (V,E) holds vertices and directed, labeled edges. Both carry
// property tables (key → ordered values), and every property is mirrored in
// a reverse index (key, value) → owner IDs so that lookups by property never
// scan the graph.
//
// Storage layout:
//
//   - Vertices and edges are identified by core.ID values issued by a single
//     monotonic Allocator (1, 2, 3, …). IDs are never reused, even after
//     DropVertex, DropEdge or Clear.
//   - Edge records, adjacency and property tables live in ordered btrees:
//     out[(from, edge)], in[(to, edge)], so Outgoing/Incoming are range scans
//     costing O(log E + degree).
//   - Property rows are copy-on-write and the btrees are cloned lazily, so a
//     Snapshot costs O(1) and is never disturbed by later mutations.
//
// Why use core.Graph?
//
//   - Identity, not content: two vertices with identical properties stay distinct.
//   - Deterministic iteration: Vertices(), Edges(), Outgoing(), Incoming() are ID-ordered.
//   - Cascade on delete: DropVertex removes every incident edge before it returns.
//   - Snapshot reads: sequences obtained before a mutation keep showing the old state.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(props ...Property) ID                         // O(P·log N)
//	DropVertex(id ID) error                                 // O((deg+P)·log N)
//	HasVertex(id ID) bool                                   // O(log V)
//
//	// Edge lifecycle
//	AddEdge(label string, from, to ID, props ...Property) (ID, error)
//	DropEdge(id ID) error
//	HasEdge(id ID) bool
//
//	// Properties
//	SetVertexProperty / RemoveVertexProperty / VertexProperty
//	SetEdgeProperty / RemoveEdgeProperty / EdgeProperty
//	LookupVertices(key, value) []ID / LookupEdges(key, value) []ID
//
//	// Query (lazy, snapshot at call time)
//	Vertices() iter.Seq[Vertex]
//	Edges() iter.Seq[Edge]
//	Outgoing(id ID) (iter.Seq[Edge], error)
//	Incoming(id ID) (iter.Seq[Edge], error)
//	Snapshot() *Snapshot
//
//	// Maintenance
//	Clone(opts ...GraphOption) *Graph
//	Clear()
//	Stats() Stats
//
// Errors:
//
//	ErrUnknownVertex – reference to a vertex that is not in the graph
//	ErrUnknownEdge   – reference to an edge that is not in the graph
//
// Absent property keys and absent (key, value) pairs are empty results,
// never errors.
package core
