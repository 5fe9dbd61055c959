// Package themec provides domain types for compiling color theme definitions
// into a compact binary artifact.
package themec

import (
	"context"
	"io"
)

// Color is a single named color assignment inside a theme.
type Color struct {
	Name string // Color name, interned in the artifact
	Spec string // Raw color text: rgb(...), argb(...) or 0xHEX
}

// Theme is a named collection of colors in declaration order.
type Theme struct {
	Name   string
	Colors []Color
}

// Document is one parsed input file.
type Document struct {
	Source string  // File path or import reference the document came from
	Themes []Theme // Themes in source order, duplicate names already collapsed
}

// DocumentParser reads a declarative theme document.
type DocumentParser interface {
	// Parse reads a document from r. Theme and color order must follow the
	// order of the source text.
	Parse(r io.Reader) (*Document, error)
}

// DocumentLoader resolves an input reference (usually a file path) into a
// parsed document.
type DocumentLoader interface {
	Load(source string) (*Document, error)
}

// Encoder writes a compiled theme artifact.
type Encoder interface {
	// Encode writes the artifact for ctx to w. Nothing is written to w when
	// encoding fails.
	Encode(w io.Writer, ctx *ThemeContext) error
}

// Decoder reads a compiled theme artifact.
type Decoder interface {
	Decode(r io.Reader) (*Artifact, error)
}

// ArtifactWriter renders a decoded artifact for humans or other tools.
type ArtifactWriter interface {
	Write(w io.Writer, a *Artifact) error
}

// Viewer displays an artifact interactively.
type Viewer interface {
	// View blocks until the user exits.
	View(ctx context.Context, a *Artifact) error
}

// Token is a run of source text colored by a theme.
type Token struct {
	Text       string
	Foreground string // "#rrggbb", empty for the terminal default
	Bold       bool
}

// Sample is a piece of source code used to preview a theme.
type Sample struct {
	Language string // Lexer name; empty means plain text
	Source   string
}

// Highlighter colors a code sample with the colors of an artifact theme.
type Highlighter interface {
	// Highlight returns the sample split into lines. Text without a
	// matching theme color has an empty Foreground.
	Highlight(theme ArtifactTheme, sample Sample) [][]Token
}
