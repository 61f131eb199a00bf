// SPDX-License-Identifier: MIT

package builder

import "math/rand"

const (
	// DefaultNameKey is the vertex property receiving generated names.
	DefaultNameKey = "name"

	// DefaultLabel is the label of generated edges.
	DefaultLabel = "link"
)

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	nameFn  NameFn
	nameKey string
	label   string
	rng     *rand.Rand // nil unless WithSeed/WithRand was given
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:  DefaultNameFn,
		nameKey: DefaultNameKey,
		label:   DefaultLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
