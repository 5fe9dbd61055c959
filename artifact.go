package themec

import "fmt"

// Binary artifact constants.
const (
	FormatMajor uint32 = 1
	FormatMinor uint32 = 2

	// BodyOffset is written into every header as a fixed value. It is not
	// derived from the header size.
	BodyOffset uint32 = 0x20

	TagInterns byte = 0x1F
	TagThemes  byte = 0x80
)

// Magic is the four byte signature at the start of every artifact.
var Magic = [4]byte{0xA1, 0xA2, 0x00, 0x01}

// Artifact is a decoded compiled theme file with all string references
// resolved.
type Artifact struct {
	Major      uint32
	Minor      uint32
	BodyOffset uint32
	Strings    []string // Intern table in index order
	Themes     []ArtifactTheme
}

// ArtifactTheme is a theme as stored in an artifact.
type ArtifactTheme struct {
	Name   string
	Colors []ArtifactColor
}

// ArtifactColor is a color as stored in an artifact.
type ArtifactColor struct {
	Name  string
	Value ColorValue
}

// ColorValue is a color packed into the 4 byte artifact field, either
// 0x00RRGGBB or 0xAARRGGBB.
type ColorValue uint32

// RGB returns the red, green and blue components.
func (v ColorValue) RGB() (r, g, b uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Alpha returns the top byte. It is zero for colors given as rgb(...).
func (v ColorValue) Alpha() uint8 {
	return uint8(v >> 24)
}

// Hex returns the RGB part as "#rrggbb".
func (v ColorValue) Hex() string {
	r, g, b := v.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns the full value as 0x-prefixed hex.
func (v ColorValue) String() string {
	if v.Alpha() != 0 {
		return fmt.Sprintf("0x%08x", uint32(v))
	}
	return fmt.Sprintf("0x%06x", uint32(v))
}
