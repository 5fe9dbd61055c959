// Package mock provides test doubles for themec interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var (
	_ themec.DocumentParser = (*DocumentParser)(nil)
	_ themec.DocumentLoader = (*DocumentLoader)(nil)
)

// DocumentParser is a mock implementation of themec.DocumentParser.
type DocumentParser struct {
	ParseFn func(r io.Reader) (*themec.Document, error)
}

func (p *DocumentParser) Parse(r io.Reader) (*themec.Document, error) {
	return p.ParseFn(r)
}

// DocumentLoader is a mock implementation of themec.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(source string) (*themec.Document, error)
}

func (l *DocumentLoader) Load(source string) (*themec.Document, error) {
	return l.LoadFn(source)
}
