// Package binfmt reads and writes the binary theme artifact.
//
// Layout, all integers big endian:
//
//	magic A1 A2 00 01 | major u32 | minor u32 | body offset u32 | 16 zero bytes
//	0x1F | intern count u32 | { length u32 | bytes }...
//	0x80 | theme count u32 | { name index u32 | color count u8 | { name index u32 | value u32 }... }...
//
// The file has no trailer or checksum; it ends at EOF.
package binfmt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var _ themec.Encoder = (*Encoder)(nil)

// ErrTooManyColors is returned in strict mode for a theme whose color count
// does not fit in the one byte count field.
var ErrTooManyColors = errors.New("theme has more than 255 colors")

// headerSize is the size of the fixed header including its reserved padding.
const headerSize = 32

// maxEntries is the number of color entries written for a theme before the
// rest are dropped in non-strict mode.
const maxEntries = 256

// Encoder writes ThemeContexts as binary artifacts.
type Encoder struct {
	logger *log.Logger
	strict bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLogger traces every theme and color at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Encoder) {
		e.logger = l
	}
}

// WithStrictColorCount rejects themes with more than 255 colors instead of
// truncating the count byte.
func WithStrictColorCount() Option {
	return func(e *Encoder) {
		e.strict = true
	}
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the artifact for ctx to w. The artifact is built in memory
// first; if any color fails to parse, nothing is written.
func (e *Encoder) Encode(w io.Writer, ctx *themec.ThemeContext) error {
	data, err := e.Marshal(ctx)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the artifact bytes for ctx.
func (e *Encoder) Marshal(ctx *themec.ThemeContext) ([]byte, error) {
	table := themec.BuildInternTable(ctx)

	var buf bytes.Buffer
	writeHeader(&buf)

	buf.WriteByte(themec.TagInterns)
	writeUint32(&buf, uint32(table.Len()))
	for _, s := range table.Strings() {
		writeUint32(&buf, uint32(len(s)))
		buf.WriteString(s)
	}

	buf.WriteByte(themec.TagThemes)
	writeUint32(&buf, uint32(ctx.Len()))
	for _, theme := range ctx.Themes() {
		if err := e.writeTheme(&buf, table, theme); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func (e *Encoder) writeTheme(buf *bytes.Buffer, table *themec.InternTable, theme themec.Theme) error {
	n := len(theme.Colors)
	if e.strict && n > 255 {
		return fmt.Errorf("theme %q: %w (%d)", theme.Name, ErrTooManyColors, n)
	}

	nameIdx := mustIndex(table, theme.Name)
	e.logger.Debug("Theme", "name", theme.Name, "idx", nameIdx, "colors", n)

	writeUint32(buf, nameIdx)
	buf.WriteByte(uint8(n))

	colors := theme.Colors
	if len(colors) > maxEntries {
		colors = colors[:maxEntries]
	}
	for _, c := range colors {
		value, err := themec.ParseColor(c.Spec)
		if err != nil {
			return fmt.Errorf("theme %q color %q: %w", theme.Name, c.Name, err)
		}
		e.logger.Debug("Color", "name", c.Name, "text", c.Spec, "value", fmt.Sprintf("%x", value))

		writeUint32(buf, mustIndex(table, c.Name))
		writeUint32(buf, uint32(value))
	}
	return nil
}

func writeHeader(buf *bytes.Buffer) {
	var hdr [headerSize]byte
	copy(hdr[0:4], themec.Magic[:])
	binary.BigEndian.PutUint32(hdr[4:8], themec.FormatMajor)
	binary.BigEndian.PutUint32(hdr[8:12], themec.FormatMinor)
	binary.BigEndian.PutUint32(hdr[12:16], themec.BodyOffset)
	buf.Write(hdr[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// mustIndex looks up a name that BuildInternTable is guaranteed to have
// recorded for the same context.
func mustIndex(table *themec.InternTable, s string) uint32 {
	idx, ok := table.Index(s)
	if !ok {
		panic(fmt.Sprintf("binfmt: %q missing from intern table", s))
	}
	return idx
}
