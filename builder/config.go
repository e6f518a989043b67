// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier);
//     the first invalid option is remembered in err and reported by the
//     builder before any work is done.
//
// Defaults:
//   • rule      = rule.VariantFour()   (left = v·4, right = v+1)
//   • repr      = core.RepresentationRecord
//   • maxHeight = DefaultMaxHeight

package builder

import (
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/rule"
)

// builderConfig aggregates all knobs used by the strategies.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Branch rule deriving child values from a parent value.
	rule rule.BranchRule
	// Node storage form of the produced tree.
	repr core.Representation
	// Upper bound on the requested height.
	maxHeight int

	// First option violation, if any.
	err error
}

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rule:      rule.VariantFour(),
		repr:      core.RepresentationRecord,
		maxHeight: DefaultMaxHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// fail records the first option violation only.
func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
