// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// constants.go - method names and height limits shared by all strategies.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRecursive is the canonical name for the Recursive builder.
	MethodRecursive = "Recursive"
	// MethodIterative is the canonical name for the Iterative builder.
	MethodIterative = "Iterative"
	// MethodStack is the canonical name for the Stack builder.
	MethodStack = "Stack"
	// MethodBuild is the canonical name for the Build dispatcher.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Height limits
//-----------------------------------------------------------------------------

const (
	// MinHeight is the smallest height that yields a tree (a single leaf).
	MinHeight = 1

	// DefaultMaxHeight caps heights unless WithMaxHeight says otherwise.
	// A full tree of this height has 16 777 215 nodes.
	DefaultMaxHeight = 24

	// AbsoluteMaxHeight is the largest value WithMaxHeight accepts. Stack
	// pre-sizes its arena to 2^h − 1 records, which must stay within what
	// make can allocate.
	AbsoluteMaxHeight = 32
)

// iterativeQueueCap bounds the initial queue allocation of the iterative
// builder; the queue grows past it on demand.
const iterativeQueueCap = 1 << 10
