// Package bench measures tree builders with median-of-N timing.
//
// What:
//
//   - Harness.Compare(inputs, repeats, a, b) times two functions on every
//     input, a before b, repeats calls each, and reports the median and the
//     90th percentile (HDR histogram) in milliseconds.
//   - Harness.MeasureSeries(heights, repeats, root) is Compare applied to
//     builder.Iterative and builder.Recursive, one fresh tree per call.
//   - Harness.MeasureSingle(strategy, height, root, repeats) times one
//     strategy at one height.
//   - Median(samples) is the reduction used everywhere.
//
// Options:
//
//   - WithClock(c)        time source, default SystemClock (monotonic)
//   - WithLogger(l)       progress lines, default NoopLogger
//   - WithBuildOptions(…) builder options shared by every timed build
//   - WithVerify(true)    untimed cross-check per height before timing
//
// Errors:
//
//   - ErrInvalidRepeats   repeats < 1
//   - ErrStrategyMismatch verification failed
//   - builder errors are returned wrapped with the failing height
//
// All measurements run sequentially on the calling goroutine. A Harness
// keeps no results between calls.
//
// Example:
//
//	series, err := bench.New(bench.WithBuildOptions(
//		builder.WithRepresentation(core.RepresentationMapping),
//	)).MeasureSeries([]int{1, 2, 3, 4, 5, 6, 7}, 9, 4)
package bench
