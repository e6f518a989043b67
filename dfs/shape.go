package dfs

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/core"
)

// VerifyShape checks that root is the complete binary tree of the given height:
// every node above level height has exactly two children, and every node on
// level height has none. It returns ErrNilRoot for an absent tree and an error
// wrapping ErrShapeViolation naming the first offending level otherwise.
//
// Complexity: O(n) time, O(h) stack.
func VerifyShape(root core.Node, height int) error {
	if core.IsAbsent(root) {
		return ErrNilRoot
	}
	if height < 1 {
		return errors.Wrapf(ErrShapeViolation, "height must be ≥ 1, got %d", height)
	}
	return verify(root, 1, height)
}

func verify(n core.Node, level, height int) error {
	left, right := n.Left(), n.Right()
	hasLeft, hasRight := !core.IsAbsent(left), !core.IsAbsent(right)

	if level == height {
		if hasLeft || hasRight {
			return errors.Wrapf(ErrShapeViolation, "node %d on last level %d has children", n.Value(), level)
		}
		return nil
	}
	if !hasLeft || !hasRight {
		return errors.Wrapf(ErrShapeViolation, "node %d on level %d of %d lacks a child", n.Value(), level, height)
	}
	if err := verify(left, level+1, height); err != nil {
		return err
	}
	return verify(right, level+1, height)
}
