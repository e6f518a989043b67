package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/bintree/bench"
)

// Column headers of WriteTable.
var tableHeader = []string{"Height", "Nodes", "Iterative (ms)", "Recursive (ms)", "Rec/Iter"}

// Ratio returns recMs / iterMs, or +Inf when iterMs is zero.
func Ratio(recMs, iterMs float64) float64 {
	if iterMs == 0 {
		return math.Inf(1)
	}

	return recMs / iterMs
}

// formatMs renders a duration in milliseconds with fixed precision.
func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 4, 64)
}

// formatRatio renders a ratio, "inf" for an infinite one.
func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "inf"
	}

	return strconv.FormatFloat(r, 'f', 2, 64)
}

// WriteTable renders series as an aligned table, one row per sample in order.
func WriteTable(w io.Writer, series bench.Series) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(tableHeader)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range series {
		tbl.Append([]string{
			strconv.Itoa(s.Height),
			strconv.Itoa(s.Nodes),
			formatMs(s.IterativeMs),
			formatMs(s.RecursiveMs),
			formatRatio(Ratio(s.RecursiveMs, s.IterativeMs)),
		})
	}
	tbl.Render()

	return nil
}

// WriteSingle prints the single-height comparison:
//
//	Single call at height 5:
//	  iterative  0.0123 ms
//	  recursive  0.0150 ms
//	  recursive/iterative ratio: 1.22
func WriteSingle(w io.Writer, height int, iterMs, recMs float64) error {
	_, err := fmt.Fprintf(w, "Single call at height %d:\n  iterative  %s ms\n  recursive  %s ms\n  recursive/iterative ratio: %s\n",
		height, formatMs(iterMs), formatMs(recMs), formatRatio(Ratio(recMs, iterMs)))

	return errors.Wrap(err, "report: single")
}
