package bench

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// Harness times functions with median-of-N. It holds no results between
// calls and is not safe for concurrent use: measurements must not overlap.
type Harness struct {
	clock     Clock
	logger    Logger
	buildOpts []builder.Option
	verify    bool
}

// New returns a Harness on the system clock with a silent logger and default
// builder options, then applies opts in order.
func New(opts ...Option) *Harness {
	h := &Harness{
		clock:  SystemClock{},
		logger: NoopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

// Compare runs a then b on every input, repeats times each, one call per
// repetition, strictly sequentially. Inputs are processed in order and
// duplicates are measured independently.
//
// The first error from a or b aborts the comparison; no partial result is
// returned.
func (h *Harness) Compare(inputs []int, repeats int, a, b func(int) error) ([]Pair, error) {
	// 1. Validate
	if repeats < 1 {
		return nil, errors.Wrapf(ErrInvalidRepeats, "got %d", repeats)
	}
	if a == nil || b == nil {
		return nil, errors.AssertionFailedf("bench: Compare needs two non-nil functions")
	}

	// 2. Measure each input, a before b
	pairs := make([]Pair, 0, len(inputs))
	for _, in := range inputs {
		ta, err := h.time(a, in, repeats)
		if err != nil {
			return nil, err
		}
		tb, err := h.time(b, in, repeats)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{
			Input: in,
			A:     ta.median(),
			B:     tb.median(),
			AP90:  ta.p90(),
			BP90:  tb.p90(),
		})
	}

	return pairs, nil
}

// time calls fn(in) repeats times and collects the durations.
func (h *Harness) time(fn func(int) error, in, repeats int) (*timings, error) {
	t := newTimings(repeats)
	for i := 0; i < repeats; i++ {
		start := h.clock.Now()
		err := fn(in)
		elapsed := h.clock.Now().Sub(start)
		if err != nil {
			h.logger.Errorf("bench: input %d, repetition %d: %v", in, i+1, err)

			return nil, errors.Wrapf(err, "bench: input %d", in)
		}
		t.record(elapsed)
	}

	return t, nil
}

// MeasureSeries times Iterative then Recursive at every height, building a
// fresh tree per call from root with the harness's builder options.
//
// Errors: ErrInvalidRepeats, ErrStrategyMismatch (with WithVerify), or any
// builder error, wrapped with the failing height.
func (h *Harness) MeasureSeries(heights []int, repeats int, root int64) (Series, error) {
	if repeats < 1 {
		return nil, errors.Wrapf(ErrInvalidRepeats, "got %d", repeats)
	}

	// 1. Optional untimed cross-check of the two strategies
	if h.verify {
		for _, height := range heights {
			if err := h.check(height, root); err != nil {
				return nil, err
			}
		}
	}

	// 2. Timed runs
	pairs, err := h.Compare(heights, repeats, h.buildFunc(builder.Iterative, root), h.buildFunc(builder.Recursive, root))
	if err != nil {
		return nil, err
	}

	series := make(Series, len(pairs))
	for i, p := range pairs {
		series[i] = Sample{
			Height:         p.Input,
			IterativeMs:    p.A,
			RecursiveMs:    p.B,
			IterativeP90Ms: p.AP90,
			RecursiveP90Ms: p.BP90,
			Nodes:          builder.NodeCount(p.Input),
		}
		h.logger.Infof("bench: height %d (%d nodes): iterative %.4f ms, recursive %.4f ms",
			p.Input, series[i].Nodes, p.A, p.B)
	}

	return series, nil
}

// MeasureSingle times one strategy at one height and returns the median in
// milliseconds.
func (h *Harness) MeasureSingle(s builder.Strategy, height int, root int64, repeats int) (float64, error) {
	fn, err := s.Func()
	if err != nil {
		return 0, err
	}
	if repeats < 1 {
		return 0, errors.Wrapf(ErrInvalidRepeats, "got %d", repeats)
	}

	t, err := h.time(h.buildFunc(fn, root), height, repeats)
	if err != nil {
		return 0, err
	}
	h.logger.Infof("bench: %s at height %d: %.4f ms over %d runs", s, height, t.median(), repeats)

	return t.median(), nil
}

// buildFunc adapts a builder to the Compare signature.
func (h *Harness) buildFunc(fn builder.Func, root int64) func(int) error {
	return func(height int) error {
		_, err := fn(height, root, h.buildOpts...)

		return err
	}
}

// check builds one tree per strategy and compares them with Recursive.
func (h *Harness) check(height int, root int64) error {
	want, err := builder.Recursive(height, root, h.buildOpts...)
	if err != nil {
		return errors.Wrapf(err, "bench: input %d", height)
	}
	if err = dfs.VerifyShape(want, height); err != nil {
		return errors.Mark(errors.Wrapf(err, "bench: recursive at height %d", height), ErrStrategyMismatch)
	}
	for _, s := range []builder.Strategy{builder.StrategyIterative, builder.StrategyStack} {
		got, err := builder.Build(s, height, root, h.buildOpts...)
		if err != nil {
			return errors.Wrapf(err, "bench: input %d", height)
		}
		if !core.Equal(want, got) {
			return errors.Wrapf(ErrStrategyMismatch, "%s differs from recursive at height %d", s, height)
		}
	}

	return nil
}

// MeasureSeries runs Harness.MeasureSeries on a default harness configured
// with buildOpts.
func MeasureSeries(heights []int, repeats int, root int64, buildOpts ...builder.Option) (Series, error) {
	return New(WithBuildOptions(buildOpts...)).MeasureSeries(heights, repeats, root)
}

// Compare runs Harness.Compare on a default harness.
func Compare(inputs []int, repeats int, a, b func(int) error) ([]Pair, error) {
	return New().Compare(inputs, repeats, a, b)
}
