// Package bench defines types, errors and options for timing tree builders.
package bench

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bintree/builder"
)

var (
	// ErrInvalidRepeats is returned when fewer than one repetition is requested.
	ErrInvalidRepeats = errors.New("bench: repeats must be positive")

	// ErrStrategyMismatch indicates that verification found two strategies
	// producing different trees, or a tree of the wrong shape.
	ErrStrategyMismatch = errors.New("bench: strategies disagree")
)

// Sample is the measurement of one height.
type Sample struct {
	// Height of the measured trees.
	Height int
	// IterativeMs and RecursiveMs are medians over all repetitions, in milliseconds.
	IterativeMs float64
	RecursiveMs float64
	// IterativeP90Ms and RecursiveP90Ms are 90th percentiles, in milliseconds.
	IterativeP90Ms float64
	RecursiveP90Ms float64
	// Nodes is the size of each tree built at this height.
	Nodes int
}

// Series is an ordered list of samples, one per requested height.
type Series []Sample

// Heights returns the measured heights in order.
func (s Series) Heights() []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[i].Height
	}

	return out
}

// Iterative returns the iterative medians in order.
func (s Series) Iterative() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].IterativeMs
	}

	return out
}

// Recursive returns the recursive medians in order.
func (s Series) Recursive() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].RecursiveMs
	}

	return out
}

// Pair is the result of comparing two functions on one input.
type Pair struct {
	Input int
	// A and B are median durations in milliseconds.
	A, B float64
	// AP90 and BP90 are 90th percentiles in milliseconds.
	AP90, BP90 float64
}

// Option configures a Harness.
// Use with New(opts...).
type Option func(*Harness)

// WithClock replaces the time source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(h *Harness) {
		if c != nil {
			h.clock = c
		}
	}
}

// WithLogger sets the logger for per-height progress lines. A nil logger is
// ignored.
func WithLogger(l Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithBuildOptions sets the builder options (rule, representation, height
// cap) used for every build the harness times.
func WithBuildOptions(opts ...builder.Option) Option {
	return func(h *Harness) {
		h.buildOpts = append([]builder.Option(nil), opts...)
	}
}

// WithVerify enables an untimed pre-check per height: both strategies must
// build Equal trees of the expected shape.
func WithVerify(on bool) Option {
	return func(h *Harness) {
		h.verify = on
	}
}
