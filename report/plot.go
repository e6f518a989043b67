package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/bintree/bench"
)

// ErrEmptySeries is returned by SavePlot when there is nothing to draw.
var ErrEmptySeries = errors.New("report: empty series")

const (
	// DefaultPlotPath is where SavePlot writes when given an empty path.
	DefaultPlotPath = "btree_benchmark.txt"

	defaultPlotHeight = 12
	// points per sample when widening short series.
	pointsPerSample = 8
)

// PlotOption configures Plot and SavePlot.
type PlotOption func(*plotConfig)

type plotConfig struct {
	height  int
	width   int
	caption string
}

// WithHeight sets the chart height in rows. Values below 1 are ignored.
func WithHeight(rows int) PlotOption {
	return func(c *plotConfig) {
		if rows > 0 {
			c.height = rows
		}
	}
}

// WithWidth sets the chart width in columns; 0 picks one from the series
// length.
func WithWidth(cols int) PlotOption {
	return func(c *plotConfig) {
		if cols >= 0 {
			c.width = cols
		}
	}
}

// WithCaption overrides the caption under the chart.
func WithCaption(caption string) PlotOption {
	return func(c *plotConfig) {
		c.caption = caption
	}
}

func newPlotConfig(series bench.Series, opts []PlotOption) plotConfig {
	heights := series.Heights()
	cfg := plotConfig{height: defaultPlotHeight}
	if len(heights) > 0 {
		cfg.caption = fmt.Sprintf("median ms over heights %d..%d (iterative, recursive)",
			heights[0], heights[len(heights)-1])
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.width == 0 && len(series) > 1 {
		cfg.width = len(series) * pointsPerSample
	}

	return cfg
}

// Plot draws the iterative and recursive medians of series on one chart,
// in series order. An empty series yields "".
func Plot(series bench.Series, opts ...PlotOption) string {
	if len(series) == 0 {
		return ""
	}
	cfg := newPlotConfig(series, opts)

	aopts := []asciigraph.Option{
		asciigraph.Height(cfg.height),
		asciigraph.Caption(cfg.caption),
	}
	if cfg.width > 0 && len(series) > 1 {
		aopts = append(aopts, asciigraph.Width(cfg.width))
	}

	return asciigraph.PlotMany([][]float64{series.Iterative(), series.Recursive()}, aopts...)
}

// SavePlot writes Plot(series) followed by a legend to path, DefaultPlotPath
// when path is empty, and returns the path written.
func SavePlot(path string, series bench.Series, opts ...PlotOption) (string, error) {
	if len(series) == 0 {
		return "", ErrEmptySeries
	}
	if path == "" {
		path = DefaultPlotPath
	}

	var b strings.Builder
	b.WriteString(Plot(series, opts...))
	b.WriteString("\n\nseries 1: iterative\nseries 2: recursive\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", errors.Wrapf(err, "report: saving plot to %s", path)
	}

	return path, nil
}
