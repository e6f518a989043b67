package bench_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/bench"
	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading, plus whatever Advance adds.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)

	return t
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingLogger keeps every line.
type recordingLogger struct {
	infos, errs []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

// TestMeasureSeries_Shape checks one sample per height, in order, with
// duplicates measured independently.
func TestMeasureSeries_Shape(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}
	h := bench.New(bench.WithClock(clock))

	heights := []int{3, 1, 3, 2}
	series, err := h.MeasureSeries(heights, 5, 4)
	require.NoError(t, err)
	require.Len(t, series, len(heights))
	assert.Equal(t, heights, series.Heights())
	for _, s := range series {
		assert.Equal(t, 1.0, s.IterativeMs)
		assert.Equal(t, 1.0, s.RecursiveMs)
		assert.InEpsilon(t, 1.0, s.IterativeP90Ms, 0.01)
		assert.InEpsilon(t, 1.0, s.RecursiveP90Ms, 0.01)
		assert.Equal(t, builder.NodeCount(s.Height), s.Nodes)
	}
	assert.Equal(t, []float64{1, 1, 1, 1}, series.Iterative())
	assert.Equal(t, []float64{1, 1, 1, 1}, series.Recursive())
}

// TestMeasureSeries_Empty checks that no heights yield an empty series.
func TestMeasureSeries_Empty(t *testing.T) {
	series, err := bench.New(bench.WithClock(&fakeClock{})).MeasureSeries(nil, 3, 4)
	require.NoError(t, err)
	assert.Empty(t, series)
}

// TestMeasureSeries_Errors covers invalid repeats and builder failures.
func TestMeasureSeries_Errors(t *testing.T) {
	h := bench.New(bench.WithClock(&fakeClock{}))

	_, err := h.MeasureSeries([]int{1, 2}, 0, 4)
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats), "%v", err)

	_, err = bench.MeasureSeries([]int{1, 2}, -1, 4)
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats), "%v", err)

	series, err := h.MeasureSeries([]int{2, 0}, 3, 4)
	assert.Nil(t, series)
	assert.True(t, errors.Is(err, builder.ErrInvalidHeight), "%v", err)

	_, err = bench.New(bench.WithBuildOptions(builder.WithRepresentation("tuple"))).MeasureSeries([]int{2}, 1, 4)
	assert.True(t, errors.Is(err, builder.ErrInvalidRepresentation), "%v", err)
}

// TestMeasureSeries_BuildOptions checks that rule and representation reach
// the builders.
func TestMeasureSeries_BuildOptions(t *testing.T) {
	calls := 0
	counting := rule.New(
		func(v int64) int64 { calls++; return v + 1 },
		func(v int64) int64 { return v - 1 },
	)
	h := bench.New(
		bench.WithClock(&fakeClock{}),
		bench.WithBuildOptions(builder.WithRule(counting), builder.WithRepresentation(core.RepresentationMapping)),
	)
	_, err := h.MeasureSeries([]int{3}, 2, 10)
	require.NoError(t, err)
	// 3 internal nodes per tree, 2 strategies, 2 repetitions.
	assert.Equal(t, 12, calls)
}

// TestMeasureSeries_Verify checks the untimed cross-check.
func TestMeasureSeries_Verify(t *testing.T) {
	logger := &recordingLogger{}
	h := bench.New(bench.WithClock(&fakeClock{}), bench.WithVerify(true), bench.WithLogger(logger))
	series, err := h.MeasureSeries([]int{1, 4}, 2, -5)
	require.NoError(t, err)
	assert.Len(t, series, 2)
	assert.Len(t, logger.infos, 2)

	// A rule with hidden state keeps counting across builds, so each strategy
	// derives different values and verification fails.
	n := int64(0)
	unstable := rule.New(
		func(int64) int64 { n++; return n },
		func(int64) int64 { n++; return n },
	)
	h = bench.New(bench.WithClock(&fakeClock{}), bench.WithVerify(true),
		bench.WithBuildOptions(builder.WithRule(unstable)))
	_, err = h.MeasureSeries([]int{3}, 1, 0)
	assert.True(t, errors.Is(err, bench.ErrStrategyMismatch), "%v", err)
}

// TestMeasureSingle checks the single-strategy timer.
func TestMeasureSingle(t *testing.T) {
	clock := &fakeClock{step: 2 * time.Millisecond}
	h := bench.New(bench.WithClock(clock))
	for _, s := range builder.Strategies() {
		ms, err := h.MeasureSingle(s, 5, 4, 15)
		require.NoError(t, err)
		assert.Equal(t, 2.0, ms, s.String())
	}

	_, err := h.MeasureSingle(builder.StrategyRecursive, 5, 4, 0)
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats))

	_, err = h.MeasureSingle(builder.Strategy(9), 5, 4, 1)
	assert.True(t, errors.Is(err, builder.ErrUnknownStrategy))

	_, err = h.MeasureSingle(builder.StrategyIterative, 0, 4, 1)
	assert.True(t, errors.Is(err, builder.ErrInvalidHeight))
}

// TestCompare_Medians drives the fake clock from inside the timed functions.
func TestCompare_Medians(t *testing.T) {
	clock := &fakeClock{}
	h := bench.New(bench.WithClock(clock))

	// a takes n ms; b alternates 5n, n, 3n ms, so its median is 3n.
	var turn int
	spread := []int{5, 1, 3}
	a := func(n int) error {
		clock.Advance(time.Duration(n) * time.Millisecond)
		return nil
	}
	b := func(n int) error {
		clock.Advance(time.Duration(spread[turn%3]*n) * time.Millisecond)
		turn++
		return nil
	}

	pairs, err := h.Compare([]int{1, 2, 4}, 3, a, b)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Equal(t, float64(p.Input), p.A)
		assert.Equal(t, 3*float64(p.Input), p.B)
		assert.InEpsilon(t, 5*float64(p.Input), p.BP90, 0.01)
	}
}

// TestCompare_Order checks that every a-call precedes every b-call per input.
func TestCompare_Order(t *testing.T) {
	var trace []string
	a := func(n int) error { trace = append(trace, fmt.Sprintf("a%d", n)); return nil }
	b := func(n int) error { trace = append(trace, fmt.Sprintf("b%d", n)); return nil }

	_, err := bench.New(bench.WithClock(&fakeClock{})).Compare([]int{1, 2}, 2, a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a1", "b1", "b1", "a2", "a2", "b2", "b2"}, trace)
}

// TestCompare_Errors checks validation and abort-on-error.
func TestCompare_Errors(t *testing.T) {
	ok := func(int) error { return nil }
	boom := errors.New("boom")
	failOn2 := func(n int) error {
		if n == 2 {
			return boom
		}
		return nil
	}

	_, err := bench.Compare([]int{1}, 0, ok, ok)
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats))

	_, err = bench.Compare([]int{1}, 1, nil, ok)
	assert.Error(t, err)

	logger := &recordingLogger{}
	pairs, err := bench.New(bench.WithClock(&fakeClock{}), bench.WithLogger(logger)).Compare([]int{1, 2, 3}, 1, ok, failOn2)
	assert.Nil(t, pairs)
	assert.True(t, errors.Is(err, boom))
	assert.Len(t, logger.errs, 1)
}

// TestCompare_Factorial reuses the comparator for a non-tree workload.
func TestCompare_Factorial(t *testing.T) {
	var last [2]uint64
	recursive := func(n int) uint64 {
		var f func(int) uint64
		f = func(k int) uint64 {
			if k <= 1 {
				return 1
			}
			return uint64(k) * f(k-1)
		}
		return f(n)
	}
	iterative := func(n int) uint64 {
		out := uint64(1)
		for k := 2; k <= n; k++ {
			out *= uint64(k)
		}
		return out
	}

	pairs, err := bench.Compare([]int{10, 20}, 3,
		func(n int) error { last[0] = recursive(n); return nil },
		func(n int) error { last[1] = iterative(n); return nil },
	)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
	assert.Equal(t, last[0], last[1])
	assert.Equal(t, uint64(2432902008176640000), last[1])
	for _, p := range pairs {
		assert.GreaterOrEqual(t, p.A, 0.0)
		assert.GreaterOrEqual(t, p.B, 0.0)
	}
}
