// Package jsonl writes compiled theme artifacts as JSON lines.
package jsonl

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var _ themec.ArtifactWriter = (*Writer)(nil)

// Record is the JSON shape of one theme.
type Record struct {
	Theme  string        `json:"theme"`
	Colors []ColorRecord `json:"colors"`
}

// ColorRecord is the JSON shape of one color.
type ColorRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"` // 0x-prefixed hex, see themec.ColorValue.String
}

// Writer emits one Record per theme, one per line, in artifact order.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes every theme in a to w.
func (wr *Writer) Write(w io.Writer, a *themec.Artifact) error {
	enc := json.NewEncoder(w)
	for _, theme := range a.Themes {
		rec := Record{Theme: theme.Name, Colors: make([]ColorRecord, 0, len(theme.Colors))}
		for _, c := range theme.Colors {
			rec.Colors = append(rec.Colors, ColorRecord{Name: c.Name, Value: c.Value.String()})
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
