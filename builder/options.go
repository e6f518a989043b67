// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors never panic. A meaningless input is recorded and
//     surfaces as ErrOptionViolation when the builder is called.
//   • No hidden globals; the branch rule travels through builderConfig.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/rule"
)

// Option customizes a build by mutating a builderConfig before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRule sets the branch rule. A rule with a nil side is an option violation.
func WithRule(r rule.BranchRule) Option {
	return func(c *builderConfig) {
		if !r.Valid() {
			c.fail(errors.Wrapf(ErrOptionViolation, "WithRule: rule %q has a nil branch function", r.String()))
			return
		}
		c.rule = r
	}
}

// WithBranches is shorthand for WithRule(rule.New(left, right)).
func WithBranches(left, right rule.Func) Option {
	return WithRule(rule.New(left, right))
}

// WithRepresentation selects the node storage form. The tag itself is
// validated by the builder (ErrInvalidRepresentation), not here.
func WithRepresentation(r core.Representation) Option {
	return func(c *builderConfig) {
		c.repr = r
	}
}

// WithMaxHeight overrides DefaultMaxHeight. n must lie in
// [MinHeight, AbsoluteMaxHeight].
func WithMaxHeight(n int) Option {
	return func(c *builderConfig) {
		if n < MinHeight || n > AbsoluteMaxHeight {
			c.fail(errors.Wrapf(ErrOptionViolation, "WithMaxHeight: %d not in [%d, %d]", n, MinHeight, AbsoluteMaxHeight))
			return
		}
		c.maxHeight = n
	}
}
