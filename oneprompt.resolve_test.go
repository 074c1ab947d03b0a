package oneprompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariables(t *testing.T) {
	t.Run("required variable from input", func(t *testing.T) {
		declared := []Variable{{Name: "name", Required: true}}
		resolved, err := ResolveVariables(declared, InputValues{"name": "Alice"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", resolved["name"])
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		declared := []Variable{{Name: "name", Required: true}}
		_, err := ResolveVariables(declared, InputValues{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgMissingRequiredVar)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("optional variable falls back to default", func(t *testing.T) {
		declared := []Variable{{Name: "tone", Required: false, Default: "friendly"}}
		resolved, err := ResolveVariables(declared, InputValues{})
		require.NoError(t, err)
		assert.Equal(t, "friendly", resolved["tone"])
	})

	t.Run("input overrides default", func(t *testing.T) {
		declared := []Variable{{Name: "tone", Required: false, Default: "friendly"}}
		resolved, err := ResolveVariables(declared, InputValues{"tone": "formal"})
		require.NoError(t, err)
		assert.Equal(t, "formal", resolved["tone"])
	})

	t.Run("explicit empty string counts as provided", func(t *testing.T) {
		declared := []Variable{
			{Name: "name", Required: true},
			{Name: "tone", Required: false, Default: "friendly"},
		}
		resolved, err := ResolveVariables(declared, InputValues{"name": "", "tone": ""})
		require.NoError(t, err)
		assert.Equal(t, "", resolved["name"])
		assert.Equal(t, "", resolved["tone"])
	})

	t.Run("fails fast in declaration order", func(t *testing.T) {
		declared := []Variable{
			{Name: "first", Required: true},
			{Name: "second", Required: true},
		}
		_, err := ResolveVariables(declared, InputValues{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first")
		assert.NotContains(t, err.Error(), "second")
	})

	t.Run("unknown input keys ignored", func(t *testing.T) {
		declared := []Variable{{Name: "name", Required: true}}
		resolved, err := ResolveVariables(declared, InputValues{"name": "Alice", "extra": "x"})
		require.NoError(t, err)
		assert.Len(t, resolved, 1)
		_, ok := resolved["extra"]
		assert.False(t, ok)
	})

	t.Run("nil input with only optional variables", func(t *testing.T) {
		declared := []Variable{{Name: "tone", Required: false, Default: "calm"}}
		resolved, err := ResolveVariables(declared, nil)
		require.NoError(t, err)
		assert.Equal(t, "calm", resolved["tone"])
	})

	t.Run("no declared variables", func(t *testing.T) {
		resolved, err := ResolveVariables(nil, InputValues{"anything": "x"})
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}
