// Package hjson parses theme documents written in Hjson, the format read by
// the original theme compiler.
package hjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/themec"
	hjsonlib "github.com/hjson/hjson-go/v4"
)

// Compile-time interface verification.
var _ themec.DocumentParser = (*Parser)(nil)

// ErrInvalidDocument is returned when a document does not have the
// theme -> {colors: {name: spec}} shape.
var ErrInvalidDocument = errors.New("invalid theme document")

// colorsKey is the theme object field holding the color mapping.
const colorsKey = "colors"

// Parser implements themec.DocumentParser on hjson node trees, which keep
// object keys in source order.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one document from r. Root braces are optional, commas between
// members may be replaced by newlines, and keys and values may be unquoted.
//
// A key repeated within the same object replaces the earlier value but keeps
// the position of its first occurrence. An empty input is an empty document.
func (p *Parser) Parse(r io.Reader) (*themec.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return &themec.Document{}, nil
	}

	opts := hjsonlib.DefaultDecoderOptions()
	opts.UseJSONNumber = true

	var root hjsonlib.Node
	if err := hjsonlib.UnmarshalWithOptions(data, &root, opts); err != nil {
		return nil, err
	}

	top, ok := object(root.Value)
	if !ok {
		if value(root.Value) == nil {
			return &themec.Document{}, nil
		}
		return nil, invalid("top level must be an object of theme names")
	}

	doc := &themec.Document{}
	for _, name := range top.Keys {
		theme, ok := object(top.Map[name])
		if !ok {
			return nil, invalid(fmt.Sprintf("theme %q must be an object", name))
		}
		colors, err := parseColors(name, theme)
		if err != nil {
			return nil, err
		}
		doc.Themes = append(doc.Themes, themec.Theme{Name: name, Colors: colors})
	}
	return doc, nil
}

func parseColors(theme string, obj *hjsonlib.OrderedMap) ([]themec.Color, error) {
	raw, found := obj.Map[colorsKey]
	if !found {
		return nil, invalid(fmt.Sprintf("theme %q has no %q field", theme, colorsKey))
	}
	colorsObj, ok := object(raw)
	if !ok {
		return nil, invalid(fmt.Sprintf("theme %q: %q must be an object", theme, colorsKey))
	}

	colors := make([]themec.Color, 0, len(colorsObj.Keys))
	for _, name := range colorsObj.Keys {
		spec, ok := scalar(colorsObj.Map[name])
		if !ok {
			return nil, invalid(fmt.Sprintf("theme %q: color %q must be a string", theme, name))
		}
		colors = append(colors, themec.Color{Name: name, Spec: spec})
	}
	return colors, nil
}

// value unwraps the comment-carrying nodes the decoder produces.
func value(v interface{}) interface{} {
	for {
		switch n := v.(type) {
		case *hjsonlib.Node:
			if n == nil {
				return nil
			}
			v = n.Value
		case hjsonlib.Node:
			v = n.Value
		default:
			return v
		}
	}
}

func object(v interface{}) (*hjsonlib.OrderedMap, bool) {
	switch m := value(v).(type) {
	case *hjsonlib.OrderedMap:
		return m, m != nil
	case hjsonlib.OrderedMap:
		return &m, true
	}
	return nil, false
}

// scalar returns the text of a string or number. Numbers keep their source
// spelling.
func scalar(v interface{}) (string, bool) {
	switch s := value(v).(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDocument, msg)
}
