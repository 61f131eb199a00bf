// Package seed loads property graphs from declarative TOML documents.
//
// A seed names its vertices with document-local keys and wires edges between
// those keys:
//
//	name = "chain"
//
//	[[vertex]]
//	key = "v1"
//	[vertex.properties]
//	name = "v1"
//	tags = ["a", "b"]   # multi-valued property
//
//	[[edge]]
//	label = "edge_1"
//	from  = "v1"
//	to    = "v2"
//	[edge.properties]
//	weight = 3
//
// TOML integers arrive as int64, floats as float64. Lookups must use the
// same dynamic type, e.g. Has("weight", int64(3)).
//
// Errors: ErrInvalidSeed, ErrDuplicateKey, ErrUnknownRef.
package seed
