package scheme

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/athola/simple-resume/internal/colour"
	"github.com/athola/simple-resume/internal/palette"
)

// Diagnostic records a palette failure that was absorbed instead of
// propagated: the pipeline stage that failed and the original error.
type Diagnostic struct {
	Stage string
	Err   error
}

// Result is the pipeline outcome: the finalized scheme, the resolution
// metadata when a palette was resolved, and a diagnostic when resolution
// failed and the default scheme was substituted.
type Result struct {
	Scheme     ColorScheme
	Metadata   map[string]any
	Diagnostic *Diagnostic
}

// Options configures a Pipeline.
type Options struct {
	Resolver *palette.Resolver
	Logger   hclog.Logger

	// Strict propagates palette resolution failures instead of falling
	// back to the default scheme.
	Strict bool
}

// Pipeline turns a Config into a finalized ColorScheme in three phases:
// prepare (lock detection), resolve (palette application), finalize
// (validation and derivation). Each phase takes and returns values, so a
// Pipeline is safe for concurrent use.
type Pipeline struct {
	resolver *palette.Resolver
	logger   hclog.Logger
	strict   bool
}

// New builds a Pipeline.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		resolver: opts.Resolver,
		logger:   opts.Logger,
		strict:   opts.Strict,
	}
	if p.logger == nil {
		p.logger = hclog.NewNullLogger()
	}
	return p
}

// locks marks the derived fields the caller set explicitly. A locked field
// is validated but never auto-calculated over.
type locks struct {
	sidebarText bool
	sidebarBold bool
	headingIcon bool
	bold        bool
}

// Run executes the pipeline. In non-strict mode palette resolution failures
// produce the default scheme with a Diagnostic attached; invalid explicit
// colour values are an error in either mode.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (*Result, error) {
	prepared, locked := prepare(cfg)

	resolved, meta, err := p.resolve(ctx, prepared)
	if err != nil {
		if p.strict || !palette.IsPaletteError(err) {
			return nil, err
		}
		p.logger.Warn("palette resolution failed, using default scheme", "error", err)
		return &Result{
			Scheme:     DefaultScheme(),
			Diagnostic: &Diagnostic{Stage: "resolve", Err: err},
		}, nil
	}

	scheme, err := finalize(resolved, locked)
	if err != nil {
		return nil, err
	}
	return &Result{Scheme: scheme, Metadata: meta}, nil
}

// prepare detects locked derived fields. Explicit values in a direct palette
// block count: the caller wrote them out just as deliberately.
func prepare(cfg Config) (Config, locks) {
	l := locks{
		sidebarText: cfg.SidebarTextColor != "",
		sidebarBold: cfg.SidebarBoldColor != "",
		headingIcon: cfg.HeadingIconColor != "",
		bold:        cfg.BoldColor != "",
	}
	if b := cfg.Palette; b != nil {
		l.sidebarText = l.sidebarText || b.SidebarTextColor != ""
		l.sidebarBold = l.sidebarBold || b.SidebarBoldColor != ""
		l.headingIcon = l.headingIcon || b.HeadingIconColor != ""
		l.bold = l.bold || b.BoldColor != ""
	}
	return cfg, l
}

// resolve applies the palette block, if any. Direct blocks copy their role
// colours verbatim without touching any resolution strategy; resolution
// blocks go through the resolver and their swatches are cycled over the
// role order, skipping roles the caller already set.
func (p *Pipeline) resolve(ctx context.Context, cfg Config) (Config, map[string]any, error) {
	block := cfg.Palette
	if block == nil {
		return cfg, nil, nil
	}

	src, err := block.ResolveSource()
	if err != nil {
		return Config{}, nil, err
	}

	if src == palette.SourceDirect {
		return applyDirect(cfg, block)
	}

	req, err := block.Request()
	if err != nil {
		return Config{}, nil, err
	}
	if p.resolver == nil {
		return Config{}, nil, fmt.Errorf("no palette resolver configured")
	}

	res, err := p.resolver.Resolve(ctx, req)
	if err != nil {
		return Config{}, nil, err
	}

	applySwatches(&cfg, res.Swatches)
	if cfg.SchemeName == "" {
		if block.Name != "" {
			cfg.SchemeName = block.Name
		} else if name, ok := res.Metadata["name"].(string); ok && name != "" {
			cfg.SchemeName = name
		}
	}

	p.logger.Debug("palette resolved", "source", string(src), "swatches", len(res.Swatches))
	return cfg, res.Metadata, nil
}

// applyDirect copies the block's explicit role colours into the config.
func applyDirect(cfg Config, block *Block) (Config, map[string]any, error) {
	applied := make([]string, 0, 9)
	for _, c := range block.directColours() {
		applied = append(applied, c.name)
		switch c.name {
		case "theme_color":
			cfg.ThemeColor = c.value
		case "sidebar_color":
			cfg.SidebarColor = c.value
		case "sidebar_text_color":
			cfg.SidebarTextColor = c.value
		case "sidebar_bold_color":
			cfg.SidebarBoldColor = c.value
		case "bar_background_color":
			cfg.BarBackgroundColor = c.value
		case "date2_color":
			cfg.Date2Color = c.value
		case "frame_color":
			cfg.FrameColor = c.value
		case "heading_icon_color":
			cfg.HeadingIconColor = c.value
		case "bold_color":
			cfg.BoldColor = c.value
		}
	}

	meta := map[string]any{
		"source": string(palette.SourceDirect),
		"fields": applied,
	}
	return cfg, meta, nil
}

// applySwatches distributes resolved swatches over the unset roles, cycling
// when the palette is smaller than the role list.
func applySwatches(cfg *Config, swatches []string) {
	if len(swatches) == 0 {
		return
	}

	next := 0
	for _, role := range roleFields(cfg) {
		if *role.value != "" {
			continue
		}
		*role.value = swatches[next%len(swatches)]
		next++
	}
}

// finalize validates every set colour field, fills base-role defaults, and
// derives the remaining fields through the calculation service.
func finalize(cfg Config, locked locks) (ColorScheme, error) {
	defaults := DefaultScheme()

	scheme := ColorScheme{
		Name:               cfg.SchemeName,
		ThemeColor:         orDefault(cfg.ThemeColor, defaults.ThemeColor),
		SidebarColor:       orDefault(cfg.SidebarColor, defaults.SidebarColor),
		SidebarTextColor:   cfg.SidebarTextColor,
		SidebarBoldColor:   cfg.SidebarBoldColor,
		BarBackgroundColor: orDefault(cfg.BarBackgroundColor, defaults.BarBackgroundColor),
		Date2Color:         orDefault(cfg.Date2Color, defaults.Date2Color),
		FrameColor:         orDefault(cfg.FrameColor, defaults.FrameColor),
		HeadingIconColor:   cfg.HeadingIconColor,
		BoldColor:          cfg.BoldColor,
	}
	if scheme.Name == "" {
		scheme.Name = defaults.Name
	}

	if err := validateFields(scheme); err != nil {
		return ColorScheme{}, err
	}

	var err error
	if scheme.SidebarTextColor == "" || !locked.sidebarText {
		scheme.SidebarTextColor, err = TextColorFor(scheme.SidebarColor)
		if err != nil {
			return ColorScheme{}, err
		}
	}
	if scheme.HeadingIconColor == "" || !locked.headingIcon {
		scheme.HeadingIconColor, err = HeadingIconColorFor(scheme.ThemeColor, scheme.SidebarColor)
		if err != nil {
			return ColorScheme{}, err
		}
	}
	if scheme.BoldColor == "" || !locked.bold {
		scheme.BoldColor, err = BoldColorFor(scheme.FrameColor)
		if err != nil {
			return ColorScheme{}, err
		}
	}
	if scheme.SidebarBoldColor == "" || !locked.sidebarBold {
		scheme.SidebarBoldColor, err = SidebarBoldColorFor(scheme.SidebarTextColor)
		if err != nil {
			return ColorScheme{}, err
		}
	}
	// The sidebar icon always tracks the sidebar text; it has no lock.
	scheme.SidebarIconColor = scheme.SidebarTextColor

	return scheme, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// validateFields rejects any set field that is not a hex colour. Unset
// derived fields are filled later and skipped here.
func validateFields(scheme ColorScheme) error {
	fields := []struct {
		name  string
		value string
	}{
		{"theme_color", scheme.ThemeColor},
		{"sidebar_color", scheme.SidebarColor},
		{"sidebar_text_color", scheme.SidebarTextColor},
		{"sidebar_bold_color", scheme.SidebarBoldColor},
		{"bar_background_color", scheme.BarBackgroundColor},
		{"date2_color", scheme.Date2Color},
		{"frame_color", scheme.FrameColor},
		{"heading_icon_color", scheme.HeadingIconColor},
		{"bold_color", scheme.BoldColor},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !colour.IsValidHex(f.value) {
			return &colour.ValidationError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
