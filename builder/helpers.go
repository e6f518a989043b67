// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// helpers.go - small internal routines shared by the strategies.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bintree/core"
)

// children applies the configured rule to v. A panicking rule is recovered
// and reported as ErrRuleFailure so that builders never panic.
// Complexity: O(cost of the rule).
func (c builderConfig) children(method string, v int64) (left, right int64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = builderErrorf(method, ErrRuleFailure, "rule %s panicked on %d: %v", c.rule, v, p)
		}
	}()
	left, right = c.rule.Apply(v)

	return left, right, nil
}

// newNode allocates a childless node of the configured representation.
func (c builderConfig) newNode(v int64) core.Node {
	return core.NewNode(c.repr, v)
}

// subtreeFailure marks err as ErrSubtreeConstruction with the level below
// which construction stopped. Already-marked errors pass through unchanged,
// so the deepest failing level is the one reported.
func subtreeFailure(level int, err error) error {
	if errors.Is(err, ErrSubtreeConstruction) {
		return err
	}

	return errors.Mark(errors.Wrapf(err, "%s: subtree below level %d", MethodRecursive, level), ErrSubtreeConstruction)
}

// NodeCount returns the number of nodes in a full tree of the given height,
// 2^height − 1, or 0 for height < 1.
// Complexity: O(1).
func NodeCount(height int) int {
	if height < MinHeight {
		return 0
	}

	return 1<<uint(height) - 1
}
