package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/bench"
	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestTreeCmd_Formats(t *testing.T) {
	out, err := run(t, "tree", "--height", "3", "--root", "4", "--format", "levels")
	require.NoError(t, err)
	assert.Equal(t, "[4]\n[16 5]\n[64 17 20 6]\n", out)

	out, err = run(t, "tree", "--height", "2", "--root", "10", "--rule", "step", "--format", "sexpr", "--strategy", "recursive")
	require.NoError(t, err)
	assert.Equal(t, "(10 (11) (9))\n", out)

	out, err = run(t, "tree", "--height", "1", "--root", "10", "--repr", "dict")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"left\": {},\n  \"right\": {},\n  \"value\": 10\n}\n", out)

	out, err = run(t, "tree", "--height", "2", "--root", "1", "--rule", "lin:2,0,2,1", "--format", "levels", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n[2 3]\n", out)

	out, err = run(t, "tree", "--height", "2", "--format", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "Val:")
}

func TestTreeCmd_Errors(t *testing.T) {
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"tree", "--height", "0"}, builder.ErrInvalidHeight},
		{[]string{"tree", "--height", "6", "--max-height", "5"}, builder.ErrHeightLimit},
		{[]string{"tree", "--rule", "nope"}, rule.ErrUnknownRule},
		{[]string{"tree", "--rule", "lin:1,2"}, rule.ErrBadSyntax},
		{[]string{"tree", "--strategy", "quantum"}, builder.ErrUnknownStrategy},
		{[]string{"tree", "--format", "xml"}, errUnknownFormat},
	}
	for _, tc := range cases {
		_, err := run(t, tc.args...)
		assert.True(t, errors.Is(err, tc.want), "%v: got %v", tc.args, err)
	}

	_, err := run(t, "tree", "--repr", "tuple")
	assert.Error(t, err)
}

func TestBenchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.txt")
	out, err := run(t, "bench",
		"--heights", "1,2,3", "--repeats", "2",
		"--single-height", "3", "--single-repeats", "3",
		"--plot", path, "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Height")
	assert.Contains(t, out, "Single call at height 3:")
	assert.Contains(t, out, "chart saved to "+path)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	out, err = run(t, "bench", "--heights", "2", "--repeats", "1", "--single-height", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Single call")
	assert.NotContains(t, out, "chart saved")
}

func TestBenchCmd_Errors(t *testing.T) {
	_, err := run(t, "bench", "--repeats", "0")
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats), "%v", err)

	_, err = run(t, "bench", "--heights", "1,0")
	assert.True(t, errors.Is(err, builder.ErrInvalidHeight), "%v", err)

	_, err = run(t, "bench", "--heights", "1", "--repeats", "1", "--single-repeats", "0")
	assert.True(t, errors.Is(err, bench.ErrInvalidRepeats), "%v", err)
}

func TestRulesCmd(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "variant4   1 -> (4, 2)")
	assert.Contains(t, out, "step       1 -> (2, 0)")
	assert.Contains(t, out, "strategy  stack")
}
