package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/themec"
)

// StyleFunc maps chroma token types to theme colors.
type StyleFunc func(chromalib.TokenType) themec.Token

// aliases are the short color names accepted for hand-written themes, in
// addition to chroma's own token type names ("Keyword", "LiteralString").
var aliases = map[chromalib.TokenType][]string{
	chromalib.Text:          {"foreground", "fg"},
	chromalib.Keyword:       {"keyword"},
	chromalib.KeywordType:   {"type"},
	chromalib.Comment:       {"comment"},
	chromalib.LiteralString: {"string"},
	chromalib.LiteralNumber: {"number"},
	chromalib.Operator:      {"operator"},
	chromalib.NameFunction:  {"function"},
	chromalib.NameConstant:  {"constant"},
	chromalib.Punctuation:   {"punctuation"},
}

// StyleFromTheme returns a function that colors chroma token types with the
// colors of theme. A token type without its own color falls back to its
// subcategory and then its category, so a theme defining only "Keyword" also
// colors KeywordConstant. Keywords are bold.
func StyleFromTheme(theme themec.ArtifactTheme) StyleFunc {
	colors := make(map[string]string, len(theme.Colors))
	for _, c := range theme.Colors {
		if _, dup := colors[c.Name]; !dup {
			colors[c.Name] = c.Value.Hex()
		}
	}

	return func(tt chromalib.TokenType) themec.Token {
		style := themec.Token{Bold: tt.InCategory(chromalib.Keyword)}
		for _, candidate := range []chromalib.TokenType{tt, tt.SubCategory(), tt.Category()} {
			if hex, ok := colors[candidate.String()]; ok {
				style.Foreground = hex
				return style
			}
			for _, alias := range aliases[candidate] {
				if hex, ok := colors[alias]; ok {
					style.Foreground = hex
					return style
				}
			}
		}
		return style
	}
}
