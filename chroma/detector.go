package chroma

import (
	"path/filepath"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/themec"
)

// Detector picks the lexer for a preview sample.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	return name(lexers.Match(filepath.Base(path)))
}

// Sample builds a preview sample from a source file. The language comes from
// the file name and, when the name is not recognised (a script without an
// extension, say), from the content itself. An undetectable language is left
// empty, which previews as plain text.
func (d *Detector) Sample(path, source string) themec.Sample {
	language := d.DetectFromPath(path)
	if language == "" {
		language = name(lexers.Analyse(source))
	}
	return themec.Sample{Language: language, Source: source}
}

func name(l chromalib.Lexer) string {
	if l == nil {
		return ""
	}
	return l.Config().Name
}
