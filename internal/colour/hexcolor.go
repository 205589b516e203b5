// Package colour provides the colour math used across simple-resume:
// hex parsing, WCAG luminance and contrast, and HSL conversion.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexPattern matches a 7-character hex colour: '#' followed by six hex digits.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidationError reports a malformed hex colour string.
type ValidationError struct {
	// Field names the configuration field the value came from, when known.
	Field string
	Value string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid hex colour for %q: %q (expected #RRGGBB)", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid hex colour: %q (expected #RRGGBB)", e.Value)
}

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// IsValidHex reports whether s is a well-formed hex colour ('#' + 6 hex digits).
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a hex colour string into an RGB value.
// Only the canonical 7-character #RRGGBB form is accepted.
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, &ValidationError{Value: s}
	}

	r, err := strconv.ParseUint(s[1:3], 16, 8)
	if err != nil {
		return RGB{}, &ValidationError{Value: s}
	}
	g, err := strconv.ParseUint(s[3:5], 16, 8)
	if err != nil {
		return RGB{}, &ValidationError{Value: s}
	}
	b, err := strconv.ParseUint(s[5:7], 16, 8)
	if err != nil {
		return RGB{}, &ValidationError{Value: s}
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
