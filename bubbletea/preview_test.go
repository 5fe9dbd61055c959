package bubbletea_test

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/bubbletea"
	"github.com/fwojciec/themec/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifact() *themec.Artifact {
	return &themec.Artifact{
		Major: 1, Minor: 2, BodyOffset: 32,
		Strings: []string{"dark", "bg", "fg", "light", "solarized", "accent"},
		Themes: []themec.ArtifactTheme{
			{Name: "dark", Colors: []themec.ArtifactColor{{Name: "bg", Value: 0x000000}, {Name: "fg", Value: 0xFFFFFF}}},
			{Name: "light", Colors: []themec.ArtifactColor{{Name: "bg", Value: 0xFFFFFF}}},
			{Name: "solarized", Colors: []themec.ArtifactColor{{Name: "accent", Value: 0x268BD2}}},
		},
	}
}

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
	r.SetColorProfile(termenv.Ascii)
	return r
}

func update(t *testing.T, m tea.Model, msg tea.Msg) bubbletea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(bubbletea.Model)
	require.True(t, ok)
	return model
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_LoadingBeforeResize(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testArtifact(), bubbletea.WithRenderer(asciiRenderer()))

	assert.Equal(t, "Loading...", m.View())
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testArtifact(), bubbletea.WithRenderer(asciiRenderer()))
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	assert.Equal(t, 0, m.Selected())
	assert.Contains(t, m.View(), "> dark")
	assert.Contains(t, m.View(), "0xffffff")

	m = update(t, m, keyRune('j'))
	assert.Equal(t, 1, m.Selected())
	assert.Contains(t, m.View(), "> light")
	assert.Contains(t, m.View(), "light (1 color)")

	m = update(t, m, keyRune('G'))
	assert.Equal(t, 2, m.Selected())
	assert.Contains(t, m.View(), "0x268bd2")

	m = update(t, m, keyRune('j'))
	assert.Equal(t, 2, m.Selected(), "selection stops at the last theme")

	m = update(t, m, keyRune('g'))
	assert.Equal(t, 0, m.Selected())

	m = update(t, m, keyRune('k'))
	assert.Equal(t, 0, m.Selected(), "selection stops at the first theme")
}

func TestModel_QuitReturnsQuitCmd(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testArtifact(), bubbletea.WithRenderer(asciiRenderer()))

	_, cmd := m.Update(keyRune('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_EmptyArtifact(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(&themec.Artifact{}, bubbletea.WithRenderer(asciiRenderer()))
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m = update(t, m, keyRune('j'))

	assert.Equal(t, 0, m.Selected())
	assert.Contains(t, m.View(), "No themes")
}

func TestModel_HighlightsSampleWithSelectedTheme(t *testing.T) {
	t.Parallel()

	sample := themec.Sample{Language: "Go", Source: "package main"}
	var themes []string
	h := &mock.Highlighter{
		HighlightFn: func(theme themec.ArtifactTheme, got themec.Sample) [][]themec.Token {
			assert.Equal(t, sample, got)
			themes = append(themes, theme.Name)
			return [][]themec.Token{{{Text: "sample-for-" + theme.Name, Foreground: "#ff0000"}}}
		},
	}

	m := bubbletea.NewModel(testArtifact(),
		bubbletea.WithRenderer(asciiRenderer()),
		bubbletea.WithHighlighter(h, sample),
	)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Contains(t, m.View(), "sample-for-dark")

	m = update(t, m, keyRune('j'))
	assert.Contains(t, m.View(), "sample-for-light")
	assert.Equal(t, []string{"dark", "light"}, themes)
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testArtifact(), bubbletea.WithRenderer(asciiRenderer()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("solarized"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
