package chroma_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keywordTheme = themec.ArtifactTheme{
	Name: "kw",
	Colors: []themec.ArtifactColor{
		{Name: "Keyword", Value: 0xFF0000},
		{Name: "Comment", Value: 0x00FF00},
	},
}

func TestNewTokenizer_NilStyleFunc(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)

	require.Error(t, err)
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes Go code", func(t *testing.T) {
		t.Parallel()

		tokenizer, err := chroma.NewTokenizer(chroma.StyleFromTheme(keywordTheme))
		require.NoError(t, err)
		tokens := tokenizer.Tokenize("go", `package main`)

		require.NotEmpty(t, tokens)

		var reconstructed string
		for _, tok := range tokens {
			reconstructed += tok.Text
		}
		assert.Equal(t, "package main", reconstructed)

		var found bool
		for _, tok := range tokens {
			if tok.Text == "package" {
				found = true
				assert.Equal(t, "#ff0000", tok.Foreground)
				assert.True(t, tok.Bold)
			}
		}
		assert.True(t, found, "should find 'package' keyword token")
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		tokenizer, err := chroma.NewTokenizer(chroma.StyleFromTheme(keywordTheme))
		require.NoError(t, err)

		assert.Nil(t, tokenizer.Tokenize("nonexistent-language-xyz", "some code"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		tokenizer, err := chroma.NewTokenizer(chroma.StyleFromTheme(keywordTheme))
		require.NoError(t, err)

		tokens := tokenizer.Tokenize("go", "")
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromTheme(keywordTheme))
	require.NoError(t, err)

	source := "/* one\ntwo */\nvar x = 1\n"
	lines := tokenizer.TokenizeLines("go", source)

	require.Len(t, lines, 3)
	require.NotEmpty(t, lines[1])
	assert.Equal(t, "two */", lines[1][0].Text)
	assert.Equal(t, "#00ff00", lines[1][0].Foreground, "block comment keeps its color across lines")

	var rebuilt []string
	for _, line := range lines {
		var sb strings.Builder
		for _, tok := range line {
			sb.WriteString(tok.Text)
		}
		rebuilt = append(rebuilt, sb.String())
	}
	assert.Equal(t, []string{"/* one", "two */", "var x = 1"}, rebuilt)
}

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	t.Run("highlights the default sample", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewHighlighter().Highlight(keywordTheme, chroma.DefaultSample)

		require.NotEmpty(t, lines)
		var colored int
		for _, line := range lines {
			for _, tok := range line {
				if tok.Foreground != "" {
					colored++
				}
			}
		}
		assert.Positive(t, colored)
	})

	t.Run("unknown language falls back to plain text", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewHighlighter().Highlight(keywordTheme, themec.Sample{
			Language: "no-such-language",
			Source:   "hello\nworld",
		})

		require.Len(t, lines, 2)
		assert.Equal(t, "hello", lines[0][0].Text)
		assert.Equal(t, "world", lines[1][0].Text)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewHighlighter().Highlight(keywordTheme, themec.Sample{Language: "go"})

		assert.Empty(t, lines)
	})
}
