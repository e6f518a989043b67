// Package report renders benchmark series for people: an aligned table, a
// "single call" summary with the recursive/iterative ratio, and an ASCII
// chart that can be saved to a file.
//
// Functions:
//
//   - WriteTable(w, series)                 height | iterative ms | recursive ms | ratio
//   - WriteSingle(w, height, iterMs, recMs) one-height comparison lines
//   - Ratio(recMs, iterMs)                  recursive / iterative, +Inf when iterMs == 0
//   - Plot(series, opts...)                 two-line chart, iterative first
//   - SavePlot(path, series, opts...)       Plot written to path (DefaultPlotPath if empty)
//
// Errors:
//
//   - ErrEmptySeries  SavePlot called with no samples
package report
