// Package bfs provides tunable options and error definitions
// for breadth-first inspection of a binary tree.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilRoot is returned if the tree is absent.
	ErrNilRoot = errors.New("bfs: root is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node with its value and level
	// (root is level 1). If it returns an error, BFS aborts and propagates it.
	OnVisit func(value int64, level int) error

	// MaxDepth, if > 0, stops descending below this level.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(int64, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(value int64, level int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk below the given level.
//
//	d > 0: visit levels 1..d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: node values in visit sequence.
//   - Levels: node values grouped by level, Levels[0] being the root level.
type BFSResult struct {
	Order  []int64
	Levels [][]int64
}

// Height returns the number of levels visited.
func (r *BFSResult) Height() int {
	return len(r.Levels)
}

// Width returns the size of the widest level visited.
func (r *BFSResult) Width() int {
	w := 0
	for _, l := range r.Levels {
		w = max(w, len(l))
	}
	return w
}
