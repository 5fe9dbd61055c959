package themec

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// ErrInvalidColorSyntax is returned when a color spec matches none of the
// supported grammars or one of its numeric components cannot be read.
var ErrInvalidColorSyntax = errors.New("invalid color syntax")

// ColorSyntaxError describes a color spec that could not be parsed.
type ColorSyntaxError struct {
	Spec   string // The offending color text
	Reason string // Short description of what went wrong
}

// Error implements the error interface.
func (e *ColorSyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color encoding: %s", e.Spec)
	}
	return fmt.Sprintf("invalid color encoding: %s: %s", e.Spec, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidColorSyntax).
func (e *ColorSyntaxError) Unwrap() error {
	return ErrInvalidColorSyntax
}

var (
	rgbPattern  = regexp.MustCompile(`^rgb\((.*?),(.*?),(.*?)\)$`)
	argbPattern = regexp.MustCompile(`^argb\((.*?),(.*?),(.*?),(.*?)\)$`)
	hexPattern  = regexp.MustCompile(`^0x(.*)$`)
)

// ParseColor converts a color spec into its numeric value.
//
// Supported forms, tried in order:
//
//	rgb(R,G,B)      packed as 0xRRGGBB
//	argb(A,R,G,B)   packed as 0xAARRGGBB
//	0xHEX           read as-is, any width
//
// Components inside rgb/argb are decimal, or hexadecimal with a 0x prefix.
// They are not range checked: each one is rendered as at least two hex
// digits and the digits are concatenated, so a component above 255 spills
// into the field to its left instead of being clamped.
//
// Numbers of any size are accepted; a result wider than 64 bits keeps its
// low 64 bits.
func ParseColor(spec string) (uint64, error) {
	if m := rgbPattern.FindStringSubmatch(spec); m != nil {
		return packComponents(spec, m[1:])
	}
	if m := argbPattern.FindStringSubmatch(spec); m != nil {
		return packComponents(spec, m[1:])
	}
	if m := hexPattern.FindStringSubmatch(spec); m != nil {
		v, ok := parseUnsigned(strings.TrimSpace(m[1]), 16)
		if !ok {
			return 0, &ColorSyntaxError{Spec: spec, Reason: "bad hex literal"}
		}
		return low64(v), nil
	}
	return 0, &ColorSyntaxError{Spec: spec}
}

func packComponents(spec string, tokens []string) (uint64, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		n, ok := parseNumber(tok)
		if !ok {
			return 0, &ColorSyntaxError{Spec: spec, Reason: fmt.Sprintf("bad component %q", strings.TrimSpace(tok))}
		}
		digits := n.Text(16)
		if len(digits) < 2 {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
	}
	v, _ := parseUnsigned(sb.String(), 16)
	return low64(v), nil
}

// parseNumber reads a decimal token, or a hexadecimal one when it starts
// with 0x.
func parseNumber(tok string) (*big.Int, bool) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "0x") {
		return parseUnsigned(tok[2:], 16)
	}
	return parseUnsigned(tok, 10)
}

// parseUnsigned parses digits in base with no sign and no separators.
func parseUnsigned(digits string, base int) (*big.Int, bool) {
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return nil, false
	}
	return new(big.Int).SetString(digits, base)
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

func low64(v *big.Int) uint64 {
	return new(big.Int).And(v, mask64).Uint64()
}
