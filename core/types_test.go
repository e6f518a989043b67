package core_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bintree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepresentation covers tag validity and alias parsing.
func TestRepresentation(t *testing.T) {
	assert.True(t, core.RepresentationRecord.Valid())
	assert.True(t, core.RepresentationMapping.Valid())
	assert.False(t, core.Representation("tuple").Valid())
	assert.False(t, core.Representation("").Valid())

	cases := map[string]core.Representation{
		"record":    core.RepresentationRecord,
		"dataclass": core.RepresentationRecord,
		" Mapping ": core.RepresentationMapping,
		"dict":      core.RepresentationMapping,
	}
	for in, want := range cases {
		got, err := core.ParseRepresentation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := core.ParseRepresentation("unknown")
	assert.True(t, errors.Is(err, core.ErrUnknownRepresentation), "got %v", err)
}

// TestNewNode verifies the factory for both forms and the unknown tag.
func TestNewNode(t *testing.T) {
	for _, r := range []core.Representation{core.RepresentationRecord, core.RepresentationMapping} {
		n := core.NewNode(r, 10)
		require.NotNil(t, n, r)
		assert.Equal(t, int64(10), n.Value())
		assert.Nil(t, n.Left())
		assert.Nil(t, n.Right())
	}
	assert.Nil(t, core.NewNode("unknown", 1))
}

// TestNodeCapabilities exercises the setters on both forms.
func TestNodeCapabilities(t *testing.T) {
	for _, r := range []core.Representation{core.RepresentationRecord, core.RepresentationMapping} {
		root := core.NewNode(r, 1)
		root.SetLeft(core.NewNode(r, 2))
		root.SetRight(core.NewNode(r, 3))
		require.NotNil(t, root.Left())
		require.NotNil(t, root.Right())
		assert.Equal(t, int64(2), root.Left().Value())
		assert.Equal(t, int64(3), root.Right().Value())

		// detaching through nil and typed nil
		root.SetLeft(nil)
		root.SetRight((*core.Record)(nil))
		assert.Nil(t, root.Left(), r)
		assert.Nil(t, root.Right(), r)
	}
}

// TestIsAbsent covers every nil flavour the package knows about.
func TestIsAbsent(t *testing.T) {
	assert.True(t, core.IsAbsent(nil))
	assert.True(t, core.IsAbsent((*core.Record)(nil)))
	assert.True(t, core.IsAbsent(core.Mapping(nil)))
	assert.True(t, core.IsAbsent((*core.Canonical)(nil)))
	assert.False(t, core.IsAbsent(core.NewRecord(0)))
	assert.False(t, core.IsAbsent(core.Mapping{}))
}

// TestMappingValueWidths verifies integer widening and the decoded-JSON case.
func TestMappingValueWidths(t *testing.T) {
	assert.Equal(t, int64(7), core.Mapping{core.KeyValue: 7}.Value())
	assert.Equal(t, int64(7), core.Mapping{core.KeyValue: int32(7)}.Value())
	assert.Equal(t, int64(7), core.Mapping{core.KeyValue: float64(7)}.Value())
	assert.Equal(t, int64(0), core.Mapping{core.KeyValue: "7"}.Value())
	assert.Equal(t, int64(0), core.Mapping{}.Value())
}

// TestMappingPlainMapChildren verifies that untyped nested maps are read as
// Mappings and that {} marks an absent child.
func TestMappingPlainMapChildren(t *testing.T) {
	m := core.Mapping{
		core.KeyValue: int64(1),
		core.KeyLeft:  map[string]any{core.KeyValue: int64(2)},
		core.KeyRight: map[string]any{},
	}
	require.NotNil(t, m.Left())
	assert.Equal(t, int64(2), m.Left().Value())
	assert.Nil(t, m.Right())
}
