package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
)

func TestExtractString(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		wantErr  errors.Code
		expected string
	}{
		{
			name:     "present",
			args:     map[string]any{"path": "/Users/a"},
			expected: "/Users/a",
		},
		{
			name:    "missing",
			args:    map[string]any{},
			wantErr: errors.CodeMissingParameter,
		},
		{
			name:    "empty",
			args:    map[string]any{"path": ""},
			wantErr: errors.CodeMissingParameter,
		},
		{
			name:    "wrong type",
			args:    map[string]any{"path": 42.0},
			wantErr: errors.CodeInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractString(tt.args, "path")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOptionalString(t *testing.T) {
	assert.Equal(t, "fallback", OptionalString(map[string]any{}, "k", "fallback"))
	assert.Equal(t, "fallback", OptionalString(map[string]any{"k": ""}, "k", "fallback"))
	assert.Equal(t, "fallback", OptionalString(map[string]any{"k": 7.0}, "k", "fallback"))
	assert.Equal(t, "set", OptionalString(map[string]any{"k": "set"}, "k", "fallback"))
}

func TestOptionalBool(t *testing.T) {
	assert.False(t, OptionalBool(map[string]any{}, "k", false))
	assert.True(t, OptionalBool(map[string]any{}, "k", true))
	assert.True(t, OptionalBool(map[string]any{"k": true}, "k", false))
	assert.False(t, OptionalBool(map[string]any{"k": "yes"}, "k", false))
}

func TestOptionalIntReportsPresence(t *testing.T) {
	got, set, err := OptionalInt(map[string]any{}, "limit")
	require.NoError(t, err)
	assert.False(t, set)
	assert.Equal(t, 0, got)

	// JSON decoding delivers numbers as float64
	got, set, err = OptionalInt(map[string]any{"limit": 50.0}, "limit")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 50, got)

	got, set, err = OptionalInt(map[string]any{"limit": 0.0}, "limit")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 0, got)

	_, _, err = OptionalInt(map[string]any{"limit": "50"}, "limit")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParameter, errors.CodeOf(err))
}

func TestOptionalInt64(t *testing.T) {
	got, set, err := OptionalInt64(map[string]any{"job_id": 123456789.0}, "job_id")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, int64(123456789), got)

	_, set, err = OptionalInt64(map[string]any{}, "job_id")
	require.NoError(t, err)
	assert.False(t, set)
}

func TestOneOf(t *testing.T) {
	allowed := []string{"INLINE", "EXTERNAL_LINKS"}

	require.NoError(t, OneOf("disposition", "INLINE", allowed))

	err := OneOf("disposition", "SIDEWAYS", allowed)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParameter, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "disposition")
	assert.Contains(t, err.Error(), "SIDEWAYS")
}
