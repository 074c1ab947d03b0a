package oneprompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessConditionals(t *testing.T) {
	parts := []Part{
		{Name: "formal", Content: "Good day."},
		{Name: "casual", Content: "Hey!"},
	}

	t.Run("match inserts show part", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="tone" equals="formal" show="formal"/>`,
			ResolvedValues{"tone": "formal"}, parts)
		assert.Equal(t, "Good day.", out)
	})

	t.Run("no match without else removes directive", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="tone" equals="formal" show="formal"/>`,
			ResolvedValues{"tone": "casual"}, parts)
		assert.Equal(t, "", out)
	})

	t.Run("no match with else inserts else part", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="tone" equals="formal" show="formal" else="casual"/>`,
			ResolvedValues{"tone": "breezy"}, parts)
		assert.Equal(t, "Hey!", out)
	})

	t.Run("missing part renders empty", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="tone" equals="formal" show="nonexistent"/>`,
			ResolvedValues{"tone": "formal"}, parts)
		assert.Equal(t, "", out)
	})

	t.Run("unresolved variable compares as empty string", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="tone" equals="" show="casual"/>`,
			ResolvedValues{}, parts)
		assert.Equal(t, "Hey!", out)
	})

	t.Run("surrounding text preserved", func(t *testing.T) {
		out := ProcessConditionals(
			`before <if var="tone" equals="formal" show="formal"/> after`,
			ResolvedValues{"tone": "formal"}, parts)
		assert.Equal(t, "before Good day. after", out)
	})

	t.Run("multiple directives processed left to right", func(t *testing.T) {
		out := ProcessConditionals(
			`<if var="a" equals="1" show="formal"/>|<if var="b" equals="2" show="casual"/>`,
			ResolvedValues{"a": "1", "b": "2"}, parts)
		assert.Equal(t, "Good day.|Hey!", out)
	})

	t.Run("inserted part content is not reprocessed", func(t *testing.T) {
		nested := []Part{
			{Name: "outer", Content: `<if var="x" equals="1" show="inner"/>`},
			{Name: "inner", Content: "deep"},
		}
		out := ProcessConditionals(
			`<if var="x" equals="1" show="outer"/>`,
			ResolvedValues{"x": "1"}, nested)
		// Single pass: the directive inside the part survives verbatim
		assert.Equal(t, `<if var="x" equals="1" show="inner"/>`, out)
	})

	t.Run("malformed directive left verbatim", func(t *testing.T) {
		src := `<if var="tone" show="formal"/>`
		out := ProcessConditionals(src, ResolvedValues{"tone": "formal"}, parts)
		assert.Equal(t, src, out)
	})
}

func TestExtractDirectives(t *testing.T) {
	t.Run("parses all attributes", func(t *testing.T) {
		directives := extractDirectives(`<if var="tone" equals="formal" show="a" else="b"/>`)
		require.Len(t, directives, 1)
		d := directives[0]
		assert.Equal(t, "tone", d.Variable)
		assert.Equal(t, "formal", d.Equals)
		assert.Equal(t, "a", d.ShowPart)
		assert.Equal(t, "b", d.ElsePart)
		assert.True(t, d.HasElse)
	})

	t.Run("else is optional", func(t *testing.T) {
		directives := extractDirectives(`<if var="tone" equals="formal" show="a"/>`)
		require.Len(t, directives, 1)
		assert.False(t, directives[0].HasElse)
		assert.Equal(t, "", directives[0].ElsePart)
	})

	t.Run("no directives", func(t *testing.T) {
		assert.Empty(t, extractDirectives("plain {{text}}"))
	})
}
