// Package dfs defines types and options for depth-first traversal of binary
// trees, including cancellation, pre-/post-order hooks and depth limiting.
package dfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNilRoot is returned when an absent tree is passed to DFS or VerifyShape.
	ErrNilRoot = errors.New("dfs: root is nil")

	// ErrShapeViolation indicates that a tree is not the complete binary tree
	// of the requested height.
	ErrShapeViolation = errors.New("dfs: tree shape violation")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(root, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is entered (pre-order)
	// with its value and level (root is level 1).
	// Returning an error aborts traversal with that error.
	OnVisit func(value int64, level int) error

	// OnExit, if non-nil, is invoked after both subtrees of a node have been
	// explored (post-order). Returning an error aborts traversal.
	OnExit func(value int64, level int) error

	// MaxDepth, if positive, stops descending below that level.
	// Default is 0 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = 0)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(value int64, level int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(value int64, level int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal to levels 1..limit.
// Non-positive limits mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// PreOrder records values in the order nodes were entered.
	PreOrder []int64

	// PostOrder records values in the order nodes were finished.
	PostOrder []int64

	// Height is the deepest level reached (root is level 1).
	Height int

	// Leaves counts nodes without children.
	Leaves int

	// LeavesByLevel maps a level to the number of leaves found on it.
	LeavesByLevel map[int]int

	// Unary counts nodes with exactly one child.
	Unary int
}
