// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// config.go - internal configuration and deterministic defaults.

package builder

import "strconv"

// IDFn generates a vertex identifier from an integer index (a residue,
// a subgroup index, …). It must be pure and injective on the indices used.
type IDFn func(idx int) string

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn IDFn
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// DecimalID renders an index as a base-10 string ("0","1","2",...).
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// newBuilderConfig applies options over deterministic defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DecimalID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
