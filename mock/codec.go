package mock

import (
	"io"

	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var (
	_ themec.Encoder        = (*Encoder)(nil)
	_ themec.Decoder        = (*Decoder)(nil)
	_ themec.ArtifactWriter = (*ArtifactWriter)(nil)
)

// Encoder is a mock implementation of themec.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, ctx *themec.ThemeContext) error
}

func (e *Encoder) Encode(w io.Writer, ctx *themec.ThemeContext) error {
	return e.EncodeFn(w, ctx)
}

// Decoder is a mock implementation of themec.Decoder.
type Decoder struct {
	DecodeFn func(r io.Reader) (*themec.Artifact, error)
}

func (d *Decoder) Decode(r io.Reader) (*themec.Artifact, error) {
	return d.DecodeFn(r)
}

// ArtifactWriter is a mock implementation of themec.ArtifactWriter.
type ArtifactWriter struct {
	WriteFn func(w io.Writer, a *themec.Artifact) error
}

func (a *ArtifactWriter) Write(w io.Writer, artifact *themec.Artifact) error {
	return a.WriteFn(w, artifact)
}
