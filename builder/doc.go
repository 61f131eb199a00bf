// Package builder generates deterministic property-graph fixtures.
//
// Constructors (Path, Cycle, Star, Complete, RandomSparse) are composed by
// BuildGraph and configured with functional options:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithName("ring")},
//		[]builder.BuilderOption{builder.WithLabel("next"), builder.WithNameScheme(builder.SymbolNameFn)},
//		builder.Cycle(5),
//	)
//
// Every vertex carries its generated name under the name key (default
// "name"), so traversals can start with V().Has("name", "A").
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed.
package builder
