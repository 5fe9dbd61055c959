// Package yaml parses theme documents written in YAML or JSON.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/themec"
	yamllib "gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ themec.DocumentParser = (*Parser)(nil)

// ErrInvalidDocument is returned when a document does not have the
// theme -> {colors: {name: spec}} shape.
var ErrInvalidDocument = errors.New("invalid theme document")

// colorsKey is the theme object field holding the color mapping.
const colorsKey = "colors"

// Parser implements themec.DocumentParser on top of yaml.v3 node trees, which
// keep mapping keys in source order.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one document from r.
//
// A key repeated within the same mapping replaces the earlier value but keeps
// the position of its first occurrence. An empty input is an empty document.
func (p *Parser) Parse(r io.Reader) (*themec.Document, error) {
	var root yamllib.Node
	if err := yamllib.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &themec.Document{}, nil
		}
		return nil, err
	}

	top := resolve(&root)
	if top.Kind == yamllib.DocumentNode {
		if len(top.Content) == 0 {
			return &themec.Document{}, nil
		}
		top = resolve(top.Content[0])
	}
	if isNull(top) {
		return &themec.Document{}, nil
	}
	if top.Kind != yamllib.MappingNode {
		return nil, invalid(top, "top level must be a mapping of theme names")
	}

	doc := &themec.Document{}
	positions := make(map[string]int)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], resolve(top.Content[i+1])
		if key.Kind != yamllib.ScalarNode {
			return nil, invalid(key, "theme name must be a scalar")
		}

		colors, err := parseColors(key.Value, value)
		if err != nil {
			return nil, err
		}

		theme := themec.Theme{Name: key.Value, Colors: colors}
		if pos, ok := positions[key.Value]; ok {
			doc.Themes[pos] = theme
			continue
		}
		positions[key.Value] = len(doc.Themes)
		doc.Themes = append(doc.Themes, theme)
	}
	return doc, nil
}

func parseColors(theme string, obj *yamllib.Node) ([]themec.Color, error) {
	if obj.Kind != yamllib.MappingNode {
		return nil, invalid(obj, fmt.Sprintf("theme %q must be a mapping", theme))
	}

	var colorsNode *yamllib.Node
	for i := 0; i+1 < len(obj.Content); i += 2 {
		if obj.Content[i].Value == colorsKey {
			colorsNode = resolve(obj.Content[i+1])
		}
	}
	if colorsNode == nil {
		return nil, invalid(obj, fmt.Sprintf("theme %q has no %q field", theme, colorsKey))
	}
	if colorsNode.Kind != yamllib.MappingNode {
		return nil, invalid(colorsNode, fmt.Sprintf("theme %q: %q must be a mapping", theme, colorsKey))
	}

	var colors []themec.Color
	positions := make(map[string]int)
	for i := 0; i+1 < len(colorsNode.Content); i += 2 {
		key, value := colorsNode.Content[i], resolve(colorsNode.Content[i+1])
		if key.Kind != yamllib.ScalarNode {
			return nil, invalid(key, fmt.Sprintf("theme %q: color name must be a scalar", theme))
		}
		if value.Kind != yamllib.ScalarNode || isNull(value) {
			return nil, invalid(value, fmt.Sprintf("theme %q: color %q must be a string", theme, key.Value))
		}

		c := themec.Color{Name: key.Value, Spec: value.Value}
		if pos, ok := positions[c.Name]; ok {
			colors[pos] = c
			continue
		}
		positions[c.Name] = len(colors)
		colors = append(colors, c)
	}
	return colors, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yamllib.Node) *yamllib.Node {
	for n.Kind == yamllib.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yamllib.Node) bool {
	return n.Kind == yamllib.ScalarNode && n.ShortTag() == "!!null"
}

func invalid(n *yamllib.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidDocument, n.Line, msg)
}
