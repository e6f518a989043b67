// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_stack.go - depth-first construction over a pre-sized arena.
//
// Layout: a full tree of height h has exactly 2^h − 1 nodes, addressed by
// heap index. The root is slot 0, the children of slot i are 2i+1 and 2i+2,
// and slot i sits on level bits.Len(i+1). Record nodes are carved out of one
// contiguous []core.Record; Mapping nodes are allocated per slot.
//
// Traversal uses an explicit stack, so no call depth grows with h. Pushing
// the right child before the left keeps the visit order pre-order, the same
// order in which Recursive consults the rule.
//
// Complexity: O(2^h) time and nodes; O(h) stack.

package builder

import (
	"math/bits"

	"github.com/katalvlaran/bintree/core"
)

// frame is one pending arena slot.
type frame struct {
	idx  int
	node core.Node
}

// arena hands out the node stored at a heap index.
type arena struct {
	repr    core.Representation
	records []core.Record
}

// newArena pre-sizes record storage for n slots. Mapping trees need no
// backing slice.
func newArena(repr core.Representation, n int) *arena {
	a := &arena{repr: repr}
	if repr == core.RepresentationRecord {
		a.records = make([]core.Record, n)
	}

	return a
}

// at initialises slot idx with value v and returns its node.
func (a *arena) at(idx int, v int64) core.Node {
	if a.records == nil {
		return core.NewMapping(v)
	}
	a.records[idx].Val = v

	return &a.records[idx]
}

// levelOf returns the 1-based level of heap index idx.
func levelOf(idx int) int {
	return bits.Len(uint(idx + 1))
}

// Stack builds the same tree as Recursive using an index arena and an
// explicit stack. It is the default strategy of Build.
//
// Errors: ErrOptionViolation, ErrInvalidHeight, ErrHeightLimit,
// ErrInvalidRepresentation, ErrRuleFailure.
func Stack(height int, root int64, opts ...Option) (core.Node, error) {
	cfg, err := prepare(MethodStack, height, opts)
	if err != nil {
		return nil, err
	}

	// 1. Pre-size the arena and place the root in slot 0.
	a := newArena(cfg.repr, NodeCount(height))
	top := a.at(0, root)
	stack := make([]frame, 0, height+1)
	stack = append(stack, frame{idx: 0, node: top})

	// 2. Pop, derive children, push right then left.
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if levelOf(f.idx) == height {
			continue
		}

		lv, rv, err := cfg.children(MethodStack, f.node.Value())
		if err != nil {
			return nil, err
		}
		li, ri := 2*f.idx+1, 2*f.idx+2
		left, right := a.at(li, lv), a.at(ri, rv)
		f.node.SetLeft(left)
		f.node.SetRight(right)
		stack = append(stack, frame{idx: ri, node: right}, frame{idx: li, node: left})
	}

	return top, nil
}
