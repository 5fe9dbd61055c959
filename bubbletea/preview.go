// Package bubbletea provides an interactive preview of compiled theme
// artifacts using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themec"
	dv "github.com/fwojciec/themec/lipgloss"
)

// Compile-time interface verification.
var _ themec.Viewer = (*Viewer)(nil)

// Model is the Bubble Tea model for browsing the themes of an artifact.
// The left pane lists theme names; the right pane shows the swatches of the
// selected theme.
type Model struct {
	artifact *themec.Artifact
	keys     KeyMap
	ui       dv.Theme
	renderer *lipgloss.Renderer

	highlighter themec.Highlighter
	sample      themec.Sample

	selected int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer used for styling.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTheme sets the UI colors.
func WithTheme(ui dv.Theme) ModelOption {
	return func(m *Model) {
		m.ui = ui
	}
}

// WithHighlighter shows sample below the swatches, colored with the
// selected theme.
func WithHighlighter(h themec.Highlighter, sample themec.Sample) ModelOption {
	return func(m *Model) {
		m.highlighter = h
		m.sample = sample
	}
}

// NewModel creates a new Model for a.
func NewModel(a *themec.Artifact, opts ...ModelOption) Model {
	m := Model{
		artifact: a,
		keys:     DefaultKeyMap(),
		ui:       dv.DefaultTheme(),
		renderer: lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Selected returns the index of the selected theme.
func (m Model) Selected() int {
	return m.selected
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.selectTheme(m.selected - 1)
		case key.Matches(msg, m.keys.Down):
			m.selectTheme(m.selected + 1)
		case key.Matches(msg, m.keys.GotoTop):
			m.selectTheme(0)
		case key.Matches(msg, m.keys.GotoBottom):
			m.selectTheme(len(m.artifact.Themes) - 1)
		case key.Matches(msg, m.keys.HalfPageDown):
			m.viewport.HalfViewDown()
		case key.Matches(msg, m.keys.HalfPageUp):
			m.viewport.HalfViewUp()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := max(m.width-m.listWidth()-1, 1)
		if !m.ready {
			m.viewport = viewport.New(w, m.height)
			m.ready = true
		} else {
			m.viewport.Width = w
			m.viewport.Height = m.height
		}
		m.viewport.SetContent(m.content())
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if len(m.artifact.Themes) == 0 {
		return m.renderer.NewStyle().Foreground(m.ui.Muted).Render("No themes in artifact. Press q to quit.")
	}
	list := m.renderer.NewStyle().
		Width(m.listWidth()).
		Height(m.height).
		Render(m.renderList())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", m.viewport.View())
}

func (m *Model) selectTheme(i int) {
	n := len(m.artifact.Themes)
	if n == 0 {
		return
	}
	m.selected = min(max(i, 0), n-1)
	if m.ready {
		m.viewport.SetContent(m.content())
		m.viewport.GotoTop()
	}
}

func (m Model) content() string {
	if len(m.artifact.Themes) == 0 {
		return ""
	}
	theme := m.artifact.Themes[m.selected]
	out := dv.RenderTheme(m.renderer, m.ui, theme)
	if m.highlighter != nil {
		out += "\n" + dv.RenderTokens(m.renderer, m.highlighter.Highlight(theme, m.sample))
	}
	return out
}

func (m Model) renderList() string {
	normal := m.renderer.NewStyle().Foreground(m.ui.Label)
	active := m.renderer.NewStyle().Bold(true).Foreground(m.ui.Accent)

	var sb strings.Builder
	for i, theme := range m.artifact.Themes {
		if i == m.selected {
			sb.WriteString(active.Render("> " + theme.Name))
		} else {
			sb.WriteString(normal.Render("  " + theme.Name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) listWidth() int {
	w := 0
	for _, theme := range m.artifact.Themes {
		w = max(w, lipgloss.Width(theme.Name))
	}
	return w + 3
}

// Viewer implements themec.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. opts are applied to every Model it runs.
func NewViewer(ui dv.Theme, opts ...ModelOption) *Viewer {
	return &Viewer{opts: append([]ModelOption{WithTheme(ui)}, opts...)}
}

// View displays the artifact and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, a *themec.Artifact) error {
	m := NewModel(a, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
