package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var _ themec.Highlighter = (*Highlighter)(nil)

// DefaultSample is shown when no sample file is given.
var DefaultSample = themec.Sample{
	Language: "Go",
	Source: `// Package palette picks colors.
package palette

import "fmt"

const maxColors = 255

type Color uint32

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

func pick(names []string) map[string]Color {
	out := make(map[string]Color, len(names))
	for i, name := range names {
		if i >= maxColors {
			break
		}
		out[name] = Color(i * 0x010101)
	}
	return out
}
`,
}

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromTheme to create a style function from an artifact theme.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source code into colored tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) Tokenize(language, source string) []themec.Token {
	if source == "" {
		return []themec.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	return t.tokenize(lexer, source)
}

func (t *Tokenizer) tokenize(lexer chromalib.Lexer, source string) []themec.Token {
	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	tokens := []themec.Token{}
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		style := t.styleFunc(token.Type)
		style.Text = token.Value
		tokens = append(tokens, style)
	}
	return tokens
}

// TokenizeLines tokenizes source code with full context, then splits tokens by line.
// Multi-line constructs such as block comments keep their color on every line.
func (t *Tokenizer) TokenizeLines(language, source string) [][]themec.Token {
	tokens := t.Tokenize(language, source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Tokens spanning several lines are cut at newline boundaries.
func splitTokensByLine(tokens []themec.Token) [][]themec.Token {
	if len(tokens) == 0 {
		return [][]themec.Token{}
	}

	var result [][]themec.Token
	var currentLine []themec.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				piece := tok
				piece.Text = part
				currentLine = append(currentLine, piece)
			}
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}
	return result
}

// Highlighter implements themec.Highlighter with chroma lexers.
type Highlighter struct{}

// NewHighlighter creates a new Highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight colors sample with theme. Unknown languages are treated as
// plain text.
func (h *Highlighter) Highlight(theme themec.ArtifactTheme, sample themec.Sample) [][]themec.Token {
	t, _ := NewTokenizer(StyleFromTheme(theme))
	if sample.Source == "" {
		return [][]themec.Token{}
	}
	lexer := lexers.Get(sample.Language)
	if sample.Language == "" || lexer == nil {
		lexer = lexers.Fallback
	}
	tokens := t.tokenize(lexer, sample.Source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}
