package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themec"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ themec.ArtifactWriter = (*Renderer)(nil)

// swatchWidth is the number of cells used for one color sample.
const swatchWidth = 6

// swatchText is drawn on every swatch to show text contrast.
const swatchText = " Aa"

// lightSwatch is the CIE L* (0-1) above which swatch text is drawn black.
const lightSwatch = 0.6

// Renderer prints an artifact as a list of themes with color swatches.
type Renderer struct {
	theme   Theme
	profile termenv.Profile
}

// NewRenderer creates a Renderer that emits colors for the given terminal
// profile. termenv.Ascii disables styling entirely.
func NewRenderer(theme Theme, profile termenv.Profile) *Renderer {
	return &Renderer{theme: theme, profile: profile}
}

// Write renders a to w.
func (r *Renderer) Write(w io.Writer, a *themec.Artifact) error {
	lr := lipgloss.NewRenderer(w, termenv.WithProfile(r.profile))
	lr.SetColorProfile(r.profile)
	title := lr.NewStyle().Bold(true).Foreground(r.theme.Title)
	muted := lr.NewStyle().Foreground(r.theme.Muted)

	var sb strings.Builder
	sb.WriteString(title.Render(fmt.Sprintf("themec artifact v%d.%d", a.Major, a.Minor)))
	sb.WriteString("\n")
	sb.WriteString(muted.Render(fmt.Sprintf("body offset %d, %s, %s",
		a.BodyOffset, plural(len(a.Strings), "string"), plural(len(a.Themes), "theme"))))
	sb.WriteString("\n")

	for _, theme := range a.Themes {
		sb.WriteString("\n")
		sb.WriteString(RenderTheme(lr, r.theme, theme))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderTheme renders one theme as a heading followed by one line per color:
// name, value and a swatch filled with the color.
func RenderTheme(lr *lipgloss.Renderer, ui Theme, theme themec.ArtifactTheme) string {
	title := lr.NewStyle().Bold(true).Foreground(ui.Title)
	muted := lr.NewStyle().Foreground(ui.Muted)

	nameWidth := 0
	for _, c := range theme.Colors {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}
	label := lr.NewStyle().Foreground(ui.Label).Width(nameWidth)

	var sb strings.Builder
	sb.WriteString(title.Render(theme.Name))
	sb.WriteString(" ")
	sb.WriteString(muted.Render("(" + plural(len(theme.Colors), "color") + ")"))
	sb.WriteString("\n")
	for _, c := range theme.Colors {
		swatch := lr.NewStyle().
			Background(lipgloss.Color(c.Value.Hex())).
			Foreground(contrastColor(c.Value)).
			Width(swatchWidth).
			Render(swatchText)
		fmt.Fprintf(&sb, "  %s  %s  %s\n", label.Render(c.Name), muted.Render(fmt.Sprintf("%-10s", c.Value)), swatch)
	}
	return sb.String()
}

// contrastColor returns black or white, whichever reads better on v.
func contrastColor(v themec.ColorValue) lipgloss.Color {
	r, g, b := v.RGB()
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	if l > lightSwatch {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// RenderTokens renders highlighted lines, one per output line.
func RenderTokens(lr *lipgloss.Renderer, lines [][]themec.Token) string {
	var sb strings.Builder
	for _, line := range lines {
		for _, tok := range line {
			style := lr.NewStyle().Bold(tok.Bold)
			if tok.Foreground != "" {
				style = style.Foreground(lipgloss.Color(tok.Foreground))
			}
			sb.WriteString(style.Render(tok.Text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
