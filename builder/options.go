// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// any of them run.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the generator of vertex names. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithNameKey sets the property key receiving vertex names. Panics on "".
func WithNameKey(key string) BuilderOption {
	if key == "" {
		panic("builder: WithNameKey(\"\")")
	}
	return func(c *builderConfig) {
		c.nameKey = key
	}
}

// WithLabel sets the label of every generated edge. Panics on "".
func WithLabel(label string) BuilderOption {
	if label == "" {
		panic("builder: WithLabel(\"\")")
	}
	return func(c *builderConfig) {
		c.label = label
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
