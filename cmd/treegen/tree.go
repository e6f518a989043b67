package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/rule"
)

var errUnknownFormat = errors.New("treegen: unknown output format")

// treeConfig holds the flags of the tree command.
type treeConfig struct {
	height    int
	root      int64
	rule      string
	repr      string
	strategy  string
	format    string
	maxHeight int
}

func newTreeCmd() *cobra.Command {
	var cfg treeConfig
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "build one tree and print it",
		Long: `Build a full binary tree and print it as JSON, a Go value dump,
one line per level, or an s-expression.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTree(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntVar(
		&cfg.height, "height", 4, "tree height (levels, root is level 1)")
	cmd.Flags().Int64Var(
		&cfg.root, "root", 4, "root value")
	cmd.Flags().StringVar(
		&cfg.rule, "rule", rule.NameVariantFour, "branch rule: variant4, step or lin:lm,la,rm,ra")
	cmd.Flags().StringVar(
		&cfg.repr, "repr", string(core.RepresentationRecord), "node representation: record or mapping")
	cmd.Flags().StringVar(
		&cfg.strategy, "strategy", builder.DefaultStrategy.String(), "recursive, iterative or stack")
	cmd.Flags().StringVar(
		&cfg.format, "format", "json", "output format: json, pretty, levels or sexpr")
	cmd.Flags().IntVar(
		&cfg.maxHeight, "max-height", builder.DefaultMaxHeight, "refuse heights above this")

	return cmd
}

// buildOptions resolves the textual rule and representation flags.
func buildOptions(ruleText, reprText string, maxHeight int) ([]builder.Option, error) {
	r, err := rule.Parse(ruleText)
	if err != nil {
		return nil, err
	}
	repr, err := core.ParseRepresentation(reprText)
	if err != nil {
		return nil, err
	}

	return []builder.Option{
		builder.WithRule(r),
		builder.WithRepresentation(repr),
		builder.WithMaxHeight(maxHeight),
	}, nil
}

func runTree(w io.Writer, cfg treeConfig) error {
	opts, err := buildOptions(cfg.rule, cfg.repr, cfg.maxHeight)
	if err != nil {
		return err
	}
	s, err := builder.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}
	root, err := builder.Build(s, cfg.height, cfg.root, opts...)
	if err != nil {
		return err
	}

	return writeTree(w, root, cfg.format)
}

// writeTree renders root in the requested format.
func writeTree(w io.Writer, root core.Node, format string) error {
	c := core.Canonicalize(root)
	switch format {
	case "json":
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.Wrap(err, "treegen: encoding tree")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", c)
		return err
	case "levels":
		for _, level := range bfs.Levels(root) {
			if _, err := fmt.Fprintln(w, level); err != nil {
				return err
			}
		}
		return nil
	case "sexpr":
		_, err := fmt.Fprintln(w, c)
		return err
	}

	return errors.Wrapf(errUnknownFormat, "%q", format)
}
