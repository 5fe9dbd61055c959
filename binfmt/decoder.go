package binfmt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/fwojciec/themec"
)

// Compile-time interface verification.
var _ themec.Decoder = (*Decoder)(nil)

// Decoding errors.
var (
	ErrBadMagic           = errors.New("not a theme artifact")
	ErrBadHeader          = errors.New("malformed header")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrUnexpectedTag      = errors.New("unexpected section tag")
	ErrIndexOutOfRange    = errors.New("intern index out of range")
)

// supportedVersions accepts every minor revision of the current major format.
var supportedVersions = func() *semver.Constraints {
	c, err := semver.NewConstraint(fmt.Sprintf("^%d", themec.FormatMajor))
	if err != nil {
		panic(err)
	}
	return c
}()

// Decoder reads binary artifacts back into memory.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a full artifact from r and resolves all intern references.
func (d *Decoder) Decode(r io.Reader) (*themec.Artifact, error) {
	br := &reader{r: bufio.NewReader(r)}

	a, err := br.header()
	if err != nil {
		return nil, err
	}
	if a.Strings, err = br.interns(); err != nil {
		return nil, err
	}
	if a.Themes, err = br.themes(a.Strings); err != nil {
		return nil, err
	}
	return a, nil
}

// Unmarshal decodes an artifact held in memory.
func (d *Decoder) Unmarshal(data []byte) (*themec.Artifact, error) {
	return d.Decode(bytes.NewReader(data))
}

type reader struct {
	r *bufio.Reader
}

func (r *reader) header() (*themec.Artifact, error) {
	var hdr [headerSize]byte
	if err := r.full(hdr[:], "header"); err != nil {
		return nil, err
	}
	if !bytes.Equal(hdr[0:4], themec.Magic[:]) {
		return nil, fmt.Errorf("%w: magic % x", ErrBadMagic, hdr[0:4])
	}

	a := &themec.Artifact{
		Major:      binary.BigEndian.Uint32(hdr[4:8]),
		Minor:      binary.BigEndian.Uint32(hdr[8:12]),
		BodyOffset: binary.BigEndian.Uint32(hdr[12:16]),
	}

	v, err := semver.NewVersion(fmt.Sprintf("%d.%d.0", a.Major, a.Minor))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if !supportedVersions.Check(v) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}

	if a.BodyOffset < headerSize {
		return nil, fmt.Errorf("%w: body offset %d inside header", ErrBadHeader, a.BodyOffset)
	}
	if skip := int64(a.BodyOffset) - headerSize; skip > 0 {
		if _, err := io.CopyN(io.Discard, r.r, skip); err != nil {
			return nil, truncated("header", err)
		}
	}
	return a, nil
}

func (r *reader) interns() ([]string, error) {
	if err := r.tag(themec.TagInterns); err != nil {
		return nil, err
	}
	count, err := r.readUint32("intern count")
	if err != nil {
		return nil, err
	}

	var out []string
	for i := uint32(0); i < count; i++ {
		n, err := r.readUint32("string length")
		if err != nil {
			return nil, err
		}
		// Avoid trusting n for the allocation size.
		data, err := io.ReadAll(io.LimitReader(r.r, int64(n)))
		if err != nil {
			return nil, err
		}
		if uint32(len(data)) != n {
			return nil, truncated("intern string", io.ErrUnexpectedEOF)
		}
		out = append(out, string(data))
	}
	return out, nil
}

func (r *reader) themes(strs []string) ([]themec.ArtifactTheme, error) {
	if err := r.tag(themec.TagThemes); err != nil {
		return nil, err
	}
	count, err := r.readUint32("theme count")
	if err != nil {
		return nil, err
	}

	var out []themec.ArtifactTheme
	for i := uint32(0); i < count; i++ {
		name, err := r.ref(strs, "theme name")
		if err != nil {
			return nil, err
		}
		n, err := r.readByte("color count")
		if err != nil {
			return nil, err
		}

		theme := themec.ArtifactTheme{Name: name}
		for j := 0; j < int(n); j++ {
			colorName, err := r.ref(strs, "color name")
			if err != nil {
				return nil, err
			}
			value, err := r.readUint32("color value")
			if err != nil {
				return nil, err
			}
			theme.Colors = append(theme.Colors, themec.ArtifactColor{
				Name:  colorName,
				Value: themec.ColorValue(value),
			})
		}
		out = append(out, theme)
	}
	return out, nil
}

func (r *reader) tag(want byte) error {
	got, err := r.readByte("section tag")
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrUnexpectedTag, got, want)
	}
	return nil
}

func (r *reader) ref(strs []string, what string) (string, error) {
	idx, err := r.readUint32(what)
	if err != nil {
		return "", err
	}
	if int(idx) >= len(strs) {
		return "", fmt.Errorf("%w: %s %d, table has %d", ErrIndexOutOfRange, what, idx, len(strs))
	}
	return strs[idx], nil
}

func (r *reader) readUint32(what string) (uint32, error) {
	var b [4]byte
	if err := r.full(b[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (r *reader) readByte(what string) (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, truncated(what, err)
	}
	return b, nil
}

func (r *reader) full(b []byte, what string) error {
	if _, err := io.ReadFull(r.r, b); err != nil {
		return truncated(what, err)
	}
	return nil
}

// truncated reports a short read as io.ErrUnexpectedEOF.
func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("reading %s: %w", what, err)
}
