// Package scheme turns a parsed configuration document into a finalized,
// legible colour scheme: palette resolution, role mapping, and WCAG-aware
// derivation of every colour the caller left unset.
package scheme

// ColorScheme is the finalized set of role colours consumed by the
// renderers. Values are built once by the pipeline and never patched;
// a change means building a new scheme.
type ColorScheme struct {
	Name string

	ThemeColor         string
	SidebarColor       string
	SidebarTextColor   string
	SidebarBoldColor   string
	SidebarIconColor   string
	BarBackgroundColor string
	Date2Color         string
	FrameColor         string
	HeadingIconColor   string
	BoldColor          string
}

// DefaultScheme returns the documented fallback scheme, used whenever
// palette resolution fails in non-strict mode.
func DefaultScheme() ColorScheme {
	return ColorScheme{
		Name:               "default",
		ThemeColor:         "#0395DE",
		SidebarColor:       "#F6F6F6",
		SidebarTextColor:   "#000000",
		SidebarBoldColor:   "#000000",
		SidebarIconColor:   "#000000",
		BarBackgroundColor: "#DFDFDF",
		Date2Color:         "#616161",
		FrameColor:         "#757575",
		HeadingIconColor:   "#0395DE",
		BoldColor:          "#585858",
	}
}

// Config is the colour-relevant slice of the host configuration document.
// Empty fields are derived or defaulted by the pipeline; set fields are
// validated and kept.
type Config struct {
	ThemeColor         string `yaml:"theme_color"`
	SidebarColor       string `yaml:"sidebar_color"`
	SidebarTextColor   string `yaml:"sidebar_text_color"`
	SidebarBoldColor   string `yaml:"sidebar_bold_color"`
	BarBackgroundColor string `yaml:"bar_background_color"`
	Date2Color         string `yaml:"date2_color"`
	FrameColor         string `yaml:"frame_color"`
	HeadingIconColor   string `yaml:"heading_icon_color"`
	BoldColor          string `yaml:"bold_color"`

	// SchemeName labels the finalized scheme; adopted from the palette
	// name when unset.
	SchemeName string `yaml:"color_scheme"`

	// Palette describes how to obtain colours for unset roles.
	Palette *Block `yaml:"palette"`
}

// roleFields returns the swatch-fillable roles in their fixed mapping
// order, paired with pointers into cfg. Sidebar text is deliberately
// absent: it is always derived, never filled from a palette.
func roleFields(cfg *Config) []struct {
	name  string
	value *string
} {
	return []struct {
		name  string
		value *string
	}{
		{"theme_color", &cfg.ThemeColor},
		{"sidebar_color", &cfg.SidebarColor},
		{"bar_background_color", &cfg.BarBackgroundColor},
		{"date2_color", &cfg.Date2Color},
		{"frame_color", &cfg.FrameColor},
		{"heading_icon_color", &cfg.HeadingIconColor},
		{"bold_color", &cfg.BoldColor},
	}
}
