package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/chroma"
)

// Compile-time interface verification.
var _ themec.DocumentLoader = (*Loader)(nil)

// Loader reads theme documents from disk. References starting with
// "chroma:" are resolved against the builtin chroma styles instead.
type Loader struct {
	parser   themec.DocumentParser
	byExt    map[string]themec.DocumentParser
	importer themec.DocumentLoader
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithParser parses files whose extension is ext (e.g. ".hjson") with p.
// Extensions match case-insensitively.
func WithParser(ext string, p themec.DocumentParser) LoaderOption {
	return func(l *Loader) {
		l.byExt[strings.ToLower(ext)] = p
	}
}

// NewLoader creates a Loader that parses files with parser unless an option
// registers a parser for their extension.
func NewLoader(parser themec.DocumentParser, opts ...LoaderOption) *Loader {
	l := &Loader{
		parser:   parser,
		byExt:    make(map[string]themec.DocumentParser),
		importer: chroma.NewImporter(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the file at source and records source on the document.
func (l *Loader) Load(source string) (*themec.Document, error) {
	if chroma.IsReference(source) {
		return l.importer.Load(source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser := l.parser
	if p, ok := l.byExt[strings.ToLower(filepath.Ext(source))]; ok {
		parser = p
	}

	doc, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	doc.Source = source
	return doc, nil
}
