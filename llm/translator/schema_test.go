package translator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsStrictCompatible(t *testing.T) {
	tests := []struct {
		name     string
		schema   map[string]any
		expected bool
	}{
		{
			name: "strict object",
			schema: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"a", "b"},
				"properties": map[string]any{
					"a": map[string]any{"type": "string"},
					"b": map[string]any{"type": "number"},
				},
			},
			expected: true,
		},
		{
			name: "missing additionalProperties:false",
			schema: map[string]any{
				"properties": map[string]any{"a": map[string]any{"type": "string"}},
				"required":   []any{"a"},
			},
			expected: false,
		},
		{
			name: "required does not cover all properties",
			schema: map[string]any{
				"additionalProperties": false,
				"properties": map[string]any{
					"a": map[string]any{"type": "string"},
					"b": map[string]any{"type": "string"},
				},
				"required": []any{"a"},
			},
			expected: false,
		},
		{
			name: "anyOf is never strict",
			schema: map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "number"},
				},
			},
			expected: false,
		},
		{
			name: "nested non-strict property fails the whole schema",
			schema: map[string]any{
				"additionalProperties": false,
				"required":             []any{"nested"},
				"properties": map[string]any{
					"nested": map[string]any{
						"properties": map[string]any{"x": map[string]any{"type": "string"}},
						"required":   []any{},
					},
				},
			},
			expected: false,
		},
		{
			name: "strict array items",
			schema: map[string]any{
				"additionalProperties": false,
				"required":             []any{"list"},
				"properties": map[string]any{
					"list": map[string]any{
						"type": "array",
						"items": map[string]any{
							"additionalProperties": false,
							"required":             []any{"a"},
							"properties":           map[string]any{"a": map[string]any{"type": "string"}},
						},
					},
				},
			},
			expected: true,
		},
		{
			name:     "no properties at all is vacuously strict",
			schema:   map[string]any{"type": "string"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, IsStrictCompatible(tt.schema))
		})
	}
}

func TestCanonicalJSON_SortsKeysAndHandlesEmpty(t *testing.T) {
	out, err := CanonicalJSONString(nil)
	require.NoError(t, err)
	require.Equal(t, "{}", out)

	out, err = CanonicalJSONString([]byte(`{"b":1,"a":2}`))
	require.NoError(t, err)
	require.Equal(t, `{"a":2,"b":1}`, out)
}
