package scheme

import (
	"github.com/athola/simple-resume/internal/colour"
)

// Derivation factors for bold variants. Frame bold keeps the documented
// default chain intact: #757575 scaled by 0.75 yields #585858.
const (
	boldDarkenFactor        = 0.75
	sidebarBoldDarkenFactor = 0.7
)

// TextColorFor returns a readable text colour for the given background.
func TextColorFor(background string) (string, error) {
	return colour.ContrastingTextColor(background)
}

// EnsureContrast keeps candidate when it reads acceptably against
// background, and otherwise substitutes the bucketed text colour.
func EnsureContrast(background, candidate string) (string, error) {
	ratio, err := colour.ContrastRatio(background, candidate)
	if err != nil {
		return "", err
	}
	if ratio >= colour.MinContrastAA {
		return candidate, nil
	}
	return colour.ContrastingTextColor(background)
}

// HeadingIconColorFor picks the heading icon colour: the theme colour when
// it is legible against the sidebar, otherwise the sidebar's text colour.
func HeadingIconColorFor(theme, sidebar string) (string, error) {
	return EnsureContrast(sidebar, theme)
}

// darkTextLuminance splits sidebar text colours into dark (safe to darken
// further for bold weight) and light (darkening would hurt legibility).
const darkTextLuminance = 0.5

// SidebarBoldColorFor derives the bold sidebar text colour. Dark text is
// darkened further for extra weight; light text, which sits on a dark
// sidebar, is reused unchanged.
func SidebarBoldColorFor(sidebarText string) (string, error) {
	lum, err := colour.RelativeLuminance(sidebarText)
	if err != nil {
		return "", err
	}
	if lum > darkTextLuminance {
		return sidebarText, nil
	}
	return colour.Darken(sidebarText, sidebarBoldDarkenFactor)
}

// BoldColorFor derives the main-body bold colour from the frame colour.
func BoldColorFor(frame string) (string, error) {
	return colour.Darken(frame, boldDarkenFactor)
}
