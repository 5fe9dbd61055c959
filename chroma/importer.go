// Package chroma imports chroma syntax highlighting styles as theme documents.
package chroma

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/themec"
)

// Prefix marks an input reference as a chroma style, e.g. "chroma:monokai".
const Prefix = "chroma:"

// ErrUnknownStyle is returned for a style name chroma does not register.
var ErrUnknownStyle = errors.New("unknown chroma style")

// backgroundSuffix is appended to a token type name for its background color.
const backgroundSuffix = ".bg"

// Importer converts registered chroma styles into documents.
type Importer struct{}

// NewImporter creates a new Importer.
func NewImporter() *Importer {
	return &Importer{}
}

// IsReference reports whether source names a chroma style.
func IsReference(source string) bool {
	return strings.HasPrefix(source, Prefix)
}

// Load returns a one-theme document for a "chroma:<style>" reference. Every
// styled token type with a foreground color becomes a color named after the
// token type; a background color becomes "<TokenType>.bg".
func (i *Importer) Load(source string) (*themec.Document, error) {
	name := strings.TrimPrefix(source, Prefix)
	style, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return &themec.Document{
		Source: source,
		Themes: []themec.Theme{FromStyle(style)},
	}, nil
}

// FromStyle converts a chroma style into a theme named after the style.
// Backgrounds inherited unchanged from the style's Background entry are only
// emitted once, for the Background token itself.
func FromStyle(style *chromalib.Style) themec.Theme {
	theme := themec.Theme{Name: style.Name}
	base := style.Get(chromalib.Background).Background

	types := style.Types()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			theme.Colors = append(theme.Colors, themec.Color{
				Name: tt.String(),
				Spec: hexSpec(entry.Colour),
			})
		}
		if entry.Background.IsSet() && (tt == chromalib.Background || entry.Background != base) {
			theme.Colors = append(theme.Colors, themec.Color{
				Name: tt.String() + backgroundSuffix,
				Spec: hexSpec(entry.Background),
			})
		}
	}
	return theme
}

// Styles returns the names of all registered styles, sorted.
func Styles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hexSpec(c chromalib.Colour) string {
	return fmt.Sprintf("0x%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}
