package builder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/rule"
	"github.com/stretchr/testify/require"
)

// classify maps a build error to the short label used in testdata files.
func classify(err error) string {
	switch {
	case errors.Is(err, builder.ErrOptionViolation):
		return "invalid option"
	case errors.Is(err, builder.ErrHeightLimit):
		return "height exceeds limit"
	case errors.Is(err, builder.ErrInvalidHeight):
		return "invalid height"
	case errors.Is(err, builder.ErrInvalidRepresentation):
		return "invalid representation"
	case errors.Is(err, builder.ErrRuleFailure):
		return "rule failure"
	}

	return err.Error()
}

// TestBuild_DataDriven runs the scenarios in testdata/build. Each case is
// built with every strategy; all strategies must agree, and the shared
// result is printed one level per line.
func TestBuild_DataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/build", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "build":
			var (
				height    int
				root      int64
				ruleName  = rule.NameVariantFour
				repr      = string(core.RepresentationRecord)
				maxHeight int
			)
			d.ScanArgs(t, "height", &height)
			d.ScanArgs(t, "root", &root)
			d.MaybeScanArgs(t, "rule", &ruleName)
			d.MaybeScanArgs(t, "repr", &repr)

			r, err := rule.Lookup(ruleName)
			require.NoError(t, err)
			opts := []builder.Option{
				builder.WithRule(r),
				builder.WithRepresentation(core.Representation(repr)),
			}
			if d.MaybeScanArgs(t, "max-height", &maxHeight) {
				opts = append(opts, builder.WithMaxHeight(maxHeight))
			}

			var outputs []string
			for _, s := range builder.Strategies() {
				node, err := builder.Build(s, height, root, opts...)
				if err != nil {
					require.Nil(t, node, "%s returned a tree alongside %v", s, err)
					outputs = append(outputs, fmt.Sprintf("error: %s\n", classify(err)))
					continue
				}
				var b strings.Builder
				for _, level := range bfs.Levels(node) {
					fmt.Fprintln(&b, level)
				}
				outputs = append(outputs, b.String())
			}
			for i := 1; i < len(outputs); i++ {
				require.Equal(t, outputs[0], outputs[i], "strategy %s disagrees", builder.Strategies()[i])
			}

			return outputs[0]

		default:
			return fmt.Sprintf("unknown command: %s", d.Cmd)
		}
	})
}
