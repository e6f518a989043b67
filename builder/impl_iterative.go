// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_iterative.go - breadth-first construction with a FIFO queue.
//
// The queue holds (node, level) pairs seeded with (root, 1). Consumed
// entries are released as the queue advances, so live auxiliary memory is
// bounded by the widest level, 2^(h−1) entries.
//
// Complexity: O(2^h) time and nodes; O(2^(h−1)) queue; no recursion.

package builder

import (
	"github.com/katalvlaran/bintree/core"
)

// queueItem is one pending node together with its 1-based level.
type queueItem struct {
	node  core.Node
	level int
}

// levelWalker owns the mutable state of one iterative build.
type levelWalker struct {
	cfg    builderConfig
	height int
	queue  []queueItem
}

// Iterative builds the same tree as Recursive, level by level.
//
// Errors: ErrOptionViolation, ErrInvalidHeight, ErrHeightLimit,
// ErrInvalidRepresentation, ErrRuleFailure.
func Iterative(height int, root int64, opts ...Option) (core.Node, error) {
	cfg, err := prepare(MethodIterative, height, opts)
	if err != nil {
		return nil, err
	}

	// 1. Seed the queue with the root at level 1.
	w := &levelWalker{
		cfg:    cfg,
		height: height,
		queue:  make([]queueItem, 0, min(NodeCount(height-1)+1, iterativeQueueCap)),
	}
	top := cfg.newNode(root)
	w.enqueue(top, 1)

	// 2. Expand until every leaf level node has been dequeued.
	if err = w.loop(); err != nil {
		return nil, err
	}

	return top, nil
}

// enqueue appends a node at the given level.
func (w *levelWalker) enqueue(n core.Node, level int) {
	w.queue = append(w.queue, queueItem{node: n, level: level})
}

// dequeue pops the front item and drops the queue's reference to it.
func (w *levelWalker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]

	return item
}

// loop materialises the children of every non-leaf node in FIFO order.
func (w *levelWalker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.level == w.height {
			continue
		}

		lv, rv, err := w.cfg.children(MethodIterative, item.node.Value())
		if err != nil {
			return err
		}
		left, right := w.cfg.newNode(lv), w.cfg.newNode(rv)
		item.node.SetLeft(left)
		item.node.SetRight(right)
		w.enqueue(left, item.level+1)
		w.enqueue(right, item.level+1)
	}

	return nil
}
