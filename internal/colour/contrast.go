package colour

import "math"

// WCAG 2.1 relative luminance constants, used to linearize sRGB channels
// before applying the standard luminance weights.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
const (
	linearizeThreshold = 0.03928
	linearizeDivisor   = 12.92
	linearizeOffset    = 0.055
	linearizeExponent  = 2.4
)

// Luminance buckets used by ContrastingTextColor to pick a readable text
// colour for a given background. The thresholds are the contract to
// reproduce; they are an approximation, not a proof of WCAG compliance for
// every background.
const (
	luminanceVeryDark  = 0.15
	luminanceDark      = 0.5
	luminanceVeryLight = 0.8
)

// MinContrastAA is the WCAG AA contrast ratio for normal text.
const MinContrastAA = 4.5

// Linearize applies WCAG gamma correction to a single sRGB channel in [0, 1].
func Linearize(channel float64) float64 {
	if channel <= linearizeThreshold {
		return channel / linearizeDivisor
	}
	return math.Pow((channel+linearizeOffset)/(1+linearizeOffset), linearizeExponent)
}

// luminanceOf computes the WCAG relative luminance of an RGB value.
func luminanceOf(rgb RGB) float64 {
	r := Linearize(float64(rgb.R) / 255.0)
	g := Linearize(float64(rgb.G) / 255.0)
	b := Linearize(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RelativeLuminance returns the WCAG relative luminance of a hex colour.
// Returns a value between 0 (darkest) and 1 (lightest).
func RelativeLuminance(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return luminanceOf(rgb), nil
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs
// white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}

	// Ensure la is the lighter colour.
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// ContrastingTextColor returns a readable text colour for the given
// background, bucketed by the background's relative luminance.
func ContrastingTextColor(background string) (string, error) {
	lum, err := RelativeLuminance(background)
	if err != nil {
		return "", err
	}

	switch {
	case lum <= luminanceVeryDark:
		return "#F5F5F5", nil
	case lum <= luminanceDark:
		return "#FFFFFF", nil
	case lum >= luminanceVeryLight:
		return "#333333", nil
	default:
		return "#000000", nil
	}
}

// Darken returns a darker variant of the provided hex colour, scaling each
// channel by factor and clamping to the valid range.
func Darken(hex string, factor float64) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}

	scale := func(c uint8) uint8 {
		v := math.Round(float64(c) * factor)
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}

	return RGB{R: scale(rgb.R), G: scale(rgb.G), B: scale(rgb.B)}.Hex(), nil
}
