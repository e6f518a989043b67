package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/bench"
	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/report"
	"github.com/katalvlaran/bintree/rule"
)

// benchConfig holds the flags of the bench command.
type benchConfig struct {
	heights       []int
	repeats       int
	root          int64
	rule          string
	repr          string
	maxHeight     int
	singleHeight  int
	singleRepeats int
	plot          string
	verify        bool
	verbose       bool
}

func newBenchCmd() *cobra.Command {
	var cfg benchConfig
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compare the iterative and recursive builders",
		Long: `Time the iterative and recursive builders at each height (median of
--repeats runs, one fresh tree per run), print a table, run a longer
single-height comparison, and optionally save an ASCII chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntSliceVar(
		&cfg.heights, "heights", []int{1, 2, 3, 4, 5, 6, 7}, "heights to measure, in order")
	cmd.Flags().IntVar(
		&cfg.repeats, "repeats", 9, "runs per height and strategy")
	cmd.Flags().Int64Var(
		&cfg.root, "root", 4, "root value")
	cmd.Flags().StringVar(
		&cfg.rule, "rule", rule.NameVariantFour, "branch rule: variant4, step or lin:lm,la,rm,ra")
	cmd.Flags().StringVar(
		&cfg.repr, "repr", string(core.RepresentationMapping), "node representation: record or mapping")
	cmd.Flags().IntVar(
		&cfg.maxHeight, "max-height", builder.DefaultMaxHeight, "refuse heights above this")
	cmd.Flags().IntVar(
		&cfg.singleHeight, "single-height", 5, "height of the single-call comparison (0 skips it)")
	cmd.Flags().IntVar(
		&cfg.singleRepeats, "single-repeats", 15, "runs of the single-call comparison")
	cmd.Flags().StringVar(
		&cfg.plot, "plot", "", "save an ASCII chart to this path")
	cmd.Flags().BoolVar(
		&cfg.verify, "verify", false, "check that both builders agree before timing")
	cmd.Flags().BoolVarP(
		&cfg.verbose, "verbose", "v", false, "log per-height progress")

	return cmd
}

func runBench(w io.Writer, cfg benchConfig) error {
	opts, err := buildOptions(cfg.rule, cfg.repr, cfg.maxHeight)
	if err != nil {
		return err
	}
	hopts := []bench.Option{
		bench.WithBuildOptions(opts...),
		bench.WithVerify(cfg.verify),
	}
	if cfg.verbose {
		hopts = append(hopts, bench.WithLogger(bench.DefaultLogger{}))
	}
	h := bench.New(hopts...)

	// 1. Series over all heights
	series, err := h.MeasureSeries(cfg.heights, cfg.repeats, cfg.root)
	if err != nil {
		return err
	}
	if err = report.WriteTable(w, series); err != nil {
		return err
	}

	// 2. Single-height comparison
	if cfg.singleHeight > 0 {
		iterMs, err := h.MeasureSingle(builder.StrategyIterative, cfg.singleHeight, cfg.root, cfg.singleRepeats)
		if err != nil {
			return err
		}
		recMs, err := h.MeasureSingle(builder.StrategyRecursive, cfg.singleHeight, cfg.root, cfg.singleRepeats)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		if err = report.WriteSingle(w, cfg.singleHeight, iterMs, recMs); err != nil {
			return err
		}
	}

	// 3. Chart
	if cfg.plot != "" && len(series) > 0 {
		path, err := report.SavePlot(cfg.plot, series)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nchart saved to %s\n", path)
	}

	return nil
}
