package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a hex colour.
// Width specifies how many characters wide the colour block should be.
// Invalid colours render as an empty block rather than erroring; previews
// are cosmetic.
func Preview(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb, err := ParseHex(hex)
	if err != nil {
		return strings.Repeat(" ", width)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithLabel formats a colour block followed by a label and the hex
// code, for aligned CLI listings.
func PreviewWithLabel(hex, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Preview(hex, width), label, hex)
}

// PreviewWithText returns a colour preview with centred text overlaid.
// The text colour is chosen for contrast against the block.
func PreviewWithText(hex, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb, err := ParseHex(hex)
	if err != nil {
		return text
	}

	var fg RGB
	if luminanceOf(rgb) <= luminanceDark {
		fg = RGB{R: 255, G: 255, B: 255}
	}

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bg + fgSeq + text + ansiReset
}
