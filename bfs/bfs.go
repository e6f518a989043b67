// Package bfs provides breadth-first inspection of a binary tree built from
// core nodes, returning values in level order and grouped by level.
package bfs

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/core"
)

// queueItem pairs a node with its level (root is level 1).
type queueItem struct {
	node  core.Node
	level int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS walks the tree rooted at root level by level, left child before right,
// applying any number of functional Options.
// Returns ErrNilRoot for an absent tree, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
func BFS(root core.Node, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if core.IsAbsent(root) {
		return nil, ErrNilRoot
	}

	w := &walker{
		opts:  o,
		queue: make([]queueItem, 0, 8),
		res:   &BFSResult{},
	}

	// Seed queue with the root at level 1
	w.enqueue(root, 1)
	return w.res, w.loop()
}

// Levels returns node values grouped by level, or nil for an absent tree.
func Levels(root core.Node) [][]int64 {
	res, err := BFS(root)
	if err != nil {
		return nil
	}
	return res.Levels
}

func (w *walker) enqueue(n core.Node, level int) {
	w.queue = append(w.queue, queueItem{node: n, level: level})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}
	return nil
}

// dequeue pops the first item; the consumed prefix is released as the slice advances.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]
	return item
}

// visit records the value in Order and Levels and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	v := item.node.Value()
	w.res.Order = append(w.res.Order, v)
	if len(w.res.Levels) < item.level {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[item.level-1] = append(w.res.Levels[item.level-1], v)
	if err := w.opts.OnVisit(v, item.level); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at level %d", item.level)
	}
	return nil
}

// enqueueChildren appends present children unless MaxDepth forbids it.
func (w *walker) enqueueChildren(item queueItem) {
	next := item.level + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	if l := item.node.Left(); !core.IsAbsent(l) {
		w.enqueue(l, next)
	}
	if r := item.node.Right(); !core.IsAbsent(r) {
		w.enqueue(r, next)
	}
}
