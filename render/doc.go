// Package render turns a core.Graph into text for people and tools:
// a structural debug dump (Text), Graphviz DOT (DOT) and SVG (SVG).
//
// All renderers read a single pinned snapshot, so concurrent writers never
// produce a torn picture. The formats are for inspection only and carry no
// compatibility promise.
package render
