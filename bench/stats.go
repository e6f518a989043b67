package bench

import (
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// Histogram range: anything outside is clamped before recording.
	minLatency = time.Nanosecond
	maxLatency = time.Hour
	sigFigs    = 3

	// percentile reported alongside the median.
	tailPercentile = 90
)

// Median returns the middle value of samples, the mean of the two middle
// values for an even count, and 0 for no samples. The input is not modified.
func Median(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// timings accumulates the durations of one timed function on one input.
type timings struct {
	ms   []float64
	hist *hdrhistogram.Histogram
}

func newTimings(repeats int) *timings {
	return &timings{
		ms:   make([]float64, 0, repeats),
		hist: hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), sigFigs),
	}
}

// record adds one duration.
func (t *timings) record(d time.Duration) {
	t.ms = append(t.ms, toMs(d))
	if d < minLatency {
		d = minLatency
	} else if d > maxLatency {
		d = maxLatency
	}
	// Values are clamped to the configured range, so recording cannot fail.
	_ = t.hist.RecordValue(d.Nanoseconds())
}

// median returns the median in milliseconds.
func (t *timings) median() float64 {
	return Median(t.ms)
}

// p90 returns the 90th percentile in milliseconds.
func (t *timings) p90() float64 {
	if len(t.ms) == 0 {
		return 0
	}

	return toMs(time.Duration(t.hist.ValueAtPercentile(tailPercentile)))
}

func toMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
