package pattern_test

import (
	"testing"

	"bulkrename/internal/pattern"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultValues() map[string]string {
	return map[string]string{
		"prefix": "IMG",
		"name":   "photo",
		"suffix": "edited",
		"num":    "001",
		"date":   "2024-01-15",
	}
}

func TestRenderDefaultPattern(t *testing.T) {
	seq := pattern.Default()
	got := seq.Render(defaultValues(), ".jpg")
	// No auto-separator between adjacent placeholders: values run together.
	assert.Equal(t, "IMGphotoedited0012024-01-15.jpg", got)
}

func TestRenderNoAutoSeparator(t *testing.T) {
	seq, err := pattern.FromList([]string{"{prefix}", "{num}"})
	require.NoError(t, err)
	got := seq.Render(map[string]string{"prefix": "a", "num": "1"}, "")
	assert.Equal(t, "a1", got, "adjacent non-empty placeholders must not gain a separator")
}

func TestRenderEmptyPlaceholdersContributeNothing(t *testing.T) {
	seq, err := pattern.FromList([]string{"{prefix}", "-", "{name}", "-", "{suffix}"})
	require.NoError(t, err)
	got := seq.Render(map[string]string{"name": "photo"}, ".png")
	// Empty prefix/suffix leave their literal separators adjacent; the runs
	// collapse and the edges are trimmed.
	assert.Equal(t, "photo.png", got)
}

func TestRenderSeparatorCollapse(t *testing.T) {
	seq, err := pattern.FromList([]string{"a-", "-b", "_ ", "c"})
	require.NoError(t, err)
	got := seq.Render(nil, "")
	// "a--b_ c" -> runs collapse to their first character.
	assert.Equal(t, "a-b_c", got)
}

func TestRenderExtensionNormalized(t *testing.T) {
	seq, err := pattern.FromList([]string{"{name}"})
	require.NoError(t, err)
	assert.Equal(t, "x.jpg", seq.Render(map[string]string{"name": "x"}, "jpg"))
	assert.Equal(t, "x.jpg", seq.Render(map[string]string{"name": "x"}, ".jpg"))
	assert.Equal(t, "x", seq.Render(map[string]string{"name": "x"}, ""))
}

func TestRenderFallbacks(t *testing.T) {
	seq, err := pattern.FromList([]string{"{prefix}"})
	require.NoError(t, err)

	t.Run("falls back to original name", func(t *testing.T) {
		got := seq.Render(map[string]string{"name": "orig"}, ".txt")
		assert.Equal(t, "orig.txt", got)
	})

	t.Run("falls back to unnamed", func(t *testing.T) {
		got := seq.Render(map[string]string{}, ".txt")
		assert.Equal(t, "unnamed.txt", got)
	})

	t.Run("separator-only result is empty", func(t *testing.T) {
		sep, err := pattern.FromList([]string{"- -", "{prefix}"})
		require.NoError(t, err)
		got := sep.Render(map[string]string{"name": "orig"}, "")
		assert.Equal(t, "orig", got)
	})
}

func TestParse(t *testing.T) {
	seq, err := pattern.Parse("pre{name}_{num}post")
	require.NoError(t, err)
	assert.Equal(t, []string{"pre", "{name}", "_", "{num}", "post"}, seq.List())
	assert.Equal(t, "pre{name}_{num}post", seq.String())
}

func TestParseRejectsUnknownPlaceholder(t *testing.T) {
	_, err := pattern.Parse("{name}{bogus}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown placeholder")
}

func TestNewToken(t *testing.T) {
	tok, err := pattern.NewToken("{num}")
	require.NoError(t, err)
	assert.Equal(t, pattern.Placeholder, tok.Kind)
	assert.Equal(t, "num", tok.Text)
	assert.Equal(t, "{num}", tok.String())

	tok, err = pattern.NewToken("hello")
	require.NoError(t, err)
	assert.Equal(t, pattern.Literal, tok.Kind)

	_, err = pattern.NewToken("")
	assert.Error(t, err)

	_, err = pattern.NewToken("bad/literal")
	assert.Error(t, err, "literal with illegal filename character must be rejected")
}

func TestValidate(t *testing.T) {
	empty := &pattern.Sequence{}
	assert.Error(t, empty.Validate())

	whitespaceOnly, err := pattern.FromList([]string{"   "})
	require.NoError(t, err)
	assert.Error(t, whitespaceOnly.Validate())

	ok, err := pattern.FromList([]string{"{name}"})
	require.NoError(t, err)
	assert.NoError(t, ok.Validate())
}

func TestSpliceOperations(t *testing.T) {
	seq, err := pattern.FromList([]string{"{name}", "{num}"})
	require.NoError(t, err)

	require.NoError(t, seq.Insert("{date}", 1))
	assert.Equal(t, []string{"{name}", "{date}", "{num}"}, seq.List())

	require.NoError(t, seq.Move(2, 0))
	assert.Equal(t, []string{"{num}", "{name}", "{date}"}, seq.List())

	require.NoError(t, seq.Remove(1))
	assert.Equal(t, []string{"{num}", "{date}"}, seq.List())

	assert.Error(t, seq.Remove(5))
	assert.Error(t, seq.Move(0, 9))

	tok, ok := seq.At(0)
	require.True(t, ok)
	assert.Equal(t, "{num}", tok.String())
	_, ok = seq.At(7)
	assert.False(t, ok)

	seq.Clear()
	assert.Equal(t, 0, seq.Len())
}
