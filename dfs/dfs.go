// Package dfs implements depth-first traversal over binary trees of core.Node
// values. It supports cancellation, pre- and post-order hooks, depth limits
// and shape diagnostics.
//
// Complexity:
//
//   - Time:   O(n) for traversal, plus overhead of hooks.
//   - Memory: O(h) recursion stack, O(n) for the recorded orders.
package dfs

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts DFSOptions // traversal options
	res  *DFSResult // result collector
}

// DFS performs depth-first traversal of the tree rooted at root, left subtree
// first. Returns DFSResult or an error if the tree is absent, or if the walk is
// aborted by context or hook.
func DFS(root core.Node, opts ...Option) (*DFSResult, error) {
	// 1. Validate input tree
	if core.IsAbsent(root) {
		return nil, ErrNilRoot
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &DFSResult{
		LeavesByLevel: make(map[int]int),
	}
	walker := &dfsWalker{opts: dopts, res: res}

	// 4. Traverse from the root at level 1
	if err := walker.traverse(root, 1); err != nil {
		return res, err
	}
	return res, nil
}

// traverse visits node n at the given level, recursing into present children.
func (w *dfsWalker) traverse(n core.Node, level int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Record discovery
	v := n.Value()
	w.res.PreOrder = append(w.res.PreOrder, v)
	w.res.Height = max(w.res.Height, level)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, level); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook at level %d", level)
		}
	}

	// 4. Explore children unless the depth limit stops us
	left, right := n.Left(), n.Right()
	hasLeft, hasRight := !core.IsAbsent(left), !core.IsAbsent(right)
	switch {
	case !hasLeft && !hasRight:
		w.res.Leaves++
		w.res.LeavesByLevel[level]++
	case hasLeft != hasRight:
		w.res.Unary++
	}
	if w.opts.MaxDepth <= 0 || level < w.opts.MaxDepth {
		if hasLeft {
			if err := w.traverse(left, level+1); err != nil {
				return err
			}
		}
		if hasRight {
			if err := w.traverse(right, level+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook, then record finish
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v, level); err != nil {
			return errors.Wrapf(err, "dfs: OnExit hook at level %d", level)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)
	return nil
}
