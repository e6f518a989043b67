// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// api.go - strategy selection and the Build dispatcher.
//
// Design contract:
//   - Three strategies share one signature (Func) and one contract: the same
//     inputs and options produce Equal trees.
//   - Build(s, ...) dispatches by Strategy; Tree(...) uses DefaultStrategy.
//   - Safety: never panic; return a nil node plus a sentinel error.

package builder

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bintree/core"
)

// Func is the common signature of Recursive, Iterative and Stack.
type Func func(height int, root int64, opts ...Option) (core.Node, error)

// Strategy identifies a construction algorithm.
type Strategy int

const (
	// StrategyRecursive selects Recursive.
	StrategyRecursive Strategy = iota
	// StrategyIterative selects Iterative.
	StrategyIterative
	// StrategyStack selects Stack.
	StrategyStack
)

// DefaultStrategy is what Tree uses.
const DefaultStrategy = StrategyStack

var strategyNames = [...]string{
	StrategyRecursive: "recursive",
	StrategyIterative: "iterative",
	StrategyStack:     "stack",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}

	return strategyNames[s]
}

// Func returns the builder implementing s.
func (s Strategy) Func() (Func, error) {
	switch s {
	case StrategyRecursive:
		return Recursive, nil
	case StrategyIterative:
		return Iterative, nil
	case StrategyStack:
		return Stack, nil
	}

	return nil, errors.Wrapf(ErrUnknownStrategy, "%d", int(s))
}

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyRecursive, StrategyIterative, StrategyStack}
}

// ParseStrategy resolves a name case-insensitively. "bfs" and "queue" are
// accepted for iterative, "arena" for stack.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return StrategyRecursive, nil
	case "iterative", "bfs", "queue":
		return StrategyIterative, nil
	case "stack", "arena":
		return StrategyStack, nil
	}

	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Build runs strategy s. An unknown strategy yields ErrUnknownStrategy;
// otherwise the result and errors are those of the strategy itself.
func Build(s Strategy, height int, root int64, opts ...Option) (core.Node, error) {
	fn, err := s.Func()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", MethodBuild)
	}

	return fn(height, root, opts...)
}

// Tree is Build with DefaultStrategy.
func Tree(height int, root int64, opts ...Option) (core.Node, error) {
	return Build(DefaultStrategy, height, root, opts...)
}
