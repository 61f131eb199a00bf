// Package propgraph is an embeddable, in-memory property graph.
//
// Vertices and directed, labeled edges carry multi-valued properties that are
// mirrored in reverse indices, so lookups by property never scan the graph.
// Reads are served from O(1) copy-on-write snapshots and composed with lazy,
// Gremlin-style traversal steps.
//
// Packages:
//
//	core/      — Graph, identifiers, property tables, reverse indices, snapshots
//	traversal/ — lazy steps (Has, OutE, InE, Out, In, Repeat, …) over a snapshot
//	seed/      — declarative TOML documents that build graphs
//	builder/   — deterministic fixture topologies (Path, Cycle, Star, …)
//	render/    — debug text dump, Graphviz DOT and SVG
//
// Quick example:
//
//	g := core.NewGraph()
//	v1 := g.AddVertex(core.Prop("name", "v1"))
//	v2 := g.AddVertex(core.Prop("name", "v2"))
//	_, _ = g.AddEdge("edge_1", v1, v2)
//
//	for e := range traversal.New(g).V().Has("name", "v2").InE().All() {
//		fmt.Println(e.Label) // edge_1
//	}
//
// The propgraph command (cmd/propgraph) exposes demo, show, query, dot and
// gen subcommands on top of these packages.
package propgraph
