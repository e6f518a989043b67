// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_recursive.go - depth-first construction by plain recursion.
//
// The recursive builder is the reference oracle: the other strategies must
// produce trees Equal to its output for every valid input.
//
// Complexity: O(2^h) time and nodes; O(h) call stack.

package builder

import (
	"github.com/katalvlaran/bintree/core"
)

// Recursive builds a full binary tree of the given height rooted at root.
//
// A node at level h (the root is level 1) is a leaf. Any other node takes
// its children's values from the rule and both subtrees are built before the
// node is returned; if either fails, the whole build fails with an error
// marked ErrSubtreeConstruction and no partial tree is returned.
//
// Errors: ErrOptionViolation, ErrInvalidHeight, ErrHeightLimit,
// ErrInvalidRepresentation, ErrRuleFailure, ErrSubtreeConstruction.
func Recursive(height int, root int64, opts ...Option) (core.Node, error) {
	cfg, err := prepare(MethodRecursive, height, opts)
	if err != nil {
		return nil, err
	}

	return cfg.grow(root, 1, height)
}

// grow returns the subtree rooted at a node holding v on the given level.
func (c builderConfig) grow(v int64, level, height int) (core.Node, error) {
	node := c.newNode(v)
	if level == height {
		return node, nil
	}

	// 1. Child values from the rule.
	lv, rv, err := c.children(MethodRecursive, v)
	if err != nil {
		return nil, err
	}

	// 2. Both subtrees, left first.
	left, err := c.grow(lv, level+1, height)
	if err != nil {
		return nil, subtreeFailure(level, err)
	}
	right, err := c.grow(rv, level+1, height)
	if err != nil {
		return nil, subtreeFailure(level, err)
	}

	// 3. Attach only once both succeeded.
	node.SetLeft(left)
	node.SetRight(right)

	return node, nil
}
