package mikroconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecursiveForMaps(t *testing.T) {
	base := map[string]any{"x": map[string]any{"y": 0}}
	overlay := map[string]any{"x": map[string]any{"y": 1, "z": 2}}

	combined := merge(base, overlay)

	assert.Equal(t, map[string]any{"x": map[string]any{"y": 1, "z": 2}}, combined)
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	base := map[string]any{"x": []any{9}}
	overlay := map[string]any{"x": []any{1, 2}}

	combined := merge(base, overlay)

	assert.Equal(t, []any{1, 2}, combined["x"])
}

func TestMergeSkipsUndefined(t *testing.T) {
	base := map[string]any{"a": 1}
	overlay := map[string]any{"a": Undefined, "b": 5}

	combined := merge(base, overlay)

	assert.Equal(t, map[string]any{"a": 1, "b": 5}, combined)
}

func TestMergeReplacement(t *testing.T) {
	tests := []struct {
		name    string
		base    any
		overlay any
	}{
		{"ScalarOverScalar", 1, 2},
		{"NullOverScalar", 1, nil},
		{"ScalarOverMap", map[string]any{"y": 1}, "flat"},
		{"MapOverScalar", "flat", map[string]any{"y": 1}},
		{"ArrayOverMap", map[string]any{"y": 1}, []any{1}},
		{"MapOverArray", []any{1}, map[string]any{"y": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined := merge(map[string]any{"k": tt.base}, map[string]any{"k": tt.overlay})
			assert.Equal(t, tt.overlay, combined["k"])
		})
	}
}

func TestMergeDoesNotMutateTarget(t *testing.T) {
	base := map[string]any{"a": 1, "nested": map[string]any{"b": 2}}
	overlay := map[string]any{"a": 10, "nested": map[string]any{"c": 3}}

	combined := merge(base, overlay)

	require.Equal(t, 10, combined["a"])
	assert.Equal(t, 1, base["a"])
	assert.Equal(t, map[string]any{"b": 2}, base["nested"])
}

// Layered merges honor last-defined-wins per precedence layer.
func TestMergePrecedenceLayers(t *testing.T) {
	defaults := map[string]any{"a": 1}
	file := map[string]any{"a": 2}
	explicit := map[string]any{"a": 3}
	cli := map[string]any{"a": 4}

	layered := func(layers ...map[string]any) map[string]any {
		tree := make(map[string]any)
		for _, layer := range layers {
			tree = merge(tree, layer)
		}
		return tree
	}

	assert.Equal(t, 4, layered(defaults, file, explicit, cli)["a"])
	assert.Equal(t, 3, layered(defaults, file, explicit)["a"])
	assert.Equal(t, 2, layered(defaults, file)["a"])
	assert.Equal(t, 1, layered(defaults)["a"])
}
