package mock

import (
	"context"

	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var (
	_ themec.Viewer      = (*Viewer)(nil)
	_ themec.Highlighter = (*Highlighter)(nil)
)

// Viewer is a mock implementation of themec.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, a *themec.Artifact) error
}

func (v *Viewer) View(ctx context.Context, a *themec.Artifact) error {
	return v.ViewFn(ctx, a)
}

// Highlighter is a mock implementation of themec.Highlighter.
type Highlighter struct {
	HighlightFn func(theme themec.ArtifactTheme, sample themec.Sample) [][]themec.Token
}

func (h *Highlighter) Highlight(theme themec.ArtifactTheme, sample themec.Sample) [][]themec.Token {
	return h.HighlightFn(theme, sample)
}
