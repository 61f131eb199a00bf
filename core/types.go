// SPDX-License-Identifier: MIT
// Package core defines the property-graph store: Vertex and Edge values,
// the identifier allocator, per-entity property tables with their reverse
// indices, and the Graph that owns them.
//
// All Graph APIs share one sync.RWMutex: mutations take it exclusively,
// reads pin a copy-on-write Snapshot under the shared lock and then run
// without holding it.
//
// Errors:
//
//	ErrUnknownVertex - requested vertex does not exist.
//	ErrUnknownEdge   - requested edge does not exist.
package core

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/btree"
	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex that is not in the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced an edge that is not in the graph.
	ErrUnknownEdge = errors.New("core: unknown edge")
)

// defaultDegree is the btree fan-out used when WithDegree is not given.
const defaultDegree = 32

// ID identifies a vertex or an edge. Zero is never issued.
type ID uint64

// Value is a property value. Values match in lookups when both their
// dynamic type and their formatted form are equal. Pointers, maps, chans
// and funcs match by identity: only the very same reference matches.
type Value = any

// Property is a single key/value pair handed to AddVertex and AddEdge.
type Property struct {
	Key   string
	Value Value
}

// Prop is shorthand for Property{Key: key, Value: value}.
func Prop(key string, value Value) Property {
	return Property{Key: key, Value: value}
}

// Vertex is a read-only copy of a vertex record.
//
// Two vertices are the same vertex iff their IDs are equal; Properties
// may coincide between distinct vertices.
type Vertex struct {
	// ID is the unique, never-reused identifier of this vertex.
	ID ID

	// Properties is the vertex property table at the time the value was read.
	Properties Properties
}

// Edge is a read-only copy of a directed, labeled edge record.
type Edge struct {
	// ID is the unique, never-reused identifier of this edge.
	ID ID

	// Label is fixed at creation.
	Label string

	// From is the source vertex ID.
	From ID

	// To is the target vertex ID.
	To ID

	// Properties is the edge property table at the time the value was read.
	Properties Properties
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the logger used for mutation diagnostics.
// Nil leaves the default, which discards everything.
func WithLogger(l *log.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithName names the graph in log output. An empty name keeps the generated one.
func WithName(name string) GraphOption {
	return func(g *Graph) {
		if name != "" {
			g.name = name
		}
	}
}

// WithDegree sets the btree fan-out of every internal structure.
// Values below 2 are ignored.
func WithDegree(degree int) GraphOption {
	return func(g *Graph) {
		if degree >= 2 {
			g.degree = degree
		}
	}
}

// edgeRecord is the canonical edge row; properties live in Graph.eprops.
type edgeRecord struct {
	id       ID
	label    string
	from, to ID
}

// adjEntry is one (vertex, edge) incidence in an adjacency tree.
type adjEntry struct {
	vertex ID
	edge   ID
}

func lessID(a, b ID) bool { return a < b }

func lessEdgeRecord(a, b edgeRecord) bool { return a.id < b.id }

func lessAdjEntry(a, b adjEntry) bool {
	if a.vertex != b.vertex {
		return a.vertex < b.vertex
	}
	return a.edge < b.edge
}

// Graph is the in-memory property-graph store.
//
// mu protects every structure below it. cloneMu serializes the btree
// clones taken by concurrent readers under mu.RLock, because cloning
// rewrites the source tree's copy-on-write context.
type Graph struct {
	mu      sync.RWMutex
	cloneMu sync.Mutex

	name   string
	logger *log.Logger
	degree int

	ids *Allocator

	vertices *btree.BTreeG[ID]         // live vertex IDs
	edges    *btree.BTreeG[edgeRecord] // live edges by ID
	out      *btree.BTreeG[adjEntry]   // (from, edge)
	in       *btree.BTreeG[adjEntry]   // (to, edge)

	vprops *PropertyTable
	eprops *PropertyTable
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		name:   uuid.NewString()[:8],
		logger: log.New(io.Discard),
		degree: defaultDegree,
		ids:    &Allocator{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.WithPrefix("graph " + g.name)

	g.vertices = btree.NewG(g.degree, lessID)
	g.edges = btree.NewG(g.degree, lessEdgeRecord)
	g.out = btree.NewG(g.degree, lessAdjEntry)
	g.in = btree.NewG(g.degree, lessAdjEntry)
	g.vprops = NewPropertyTable(g.degree)
	g.eprops = NewPropertyTable(g.degree)

	return g
}

// Name returns the name used in log output.
func (g *Graph) Name() string { return g.name }
