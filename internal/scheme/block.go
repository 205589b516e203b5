package scheme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/athola/simple-resume/internal/colour"
	"github.com/athola/simple-resume/internal/palette"
)

// Block is the palette block of a configuration document. It carries either
// direct role colours, applied verbatim, or the parameters of one resolution
// strategy. Pointer fields distinguish "absent" from an explicit zero.
type Block struct {
	Source string `yaml:"source"`

	// Registry selection.
	Name string `yaml:"name"`

	// Generator parameters.
	Size           *int      `yaml:"size"`
	Seed           *int64    `yaml:"seed"`
	HueRange       []float64 `yaml:"hue_range"`
	Chroma         *float64  `yaml:"chroma"`
	LuminanceRange []float64 `yaml:"luminance_range"`

	// Remote query.
	Keywords   string `yaml:"keywords"`
	NumResults int    `yaml:"num_results"`
	OrderBy    string `yaml:"order_by"`

	// Direct role colours.
	ThemeColor         string `yaml:"theme_color"`
	SidebarColor       string `yaml:"sidebar_color"`
	SidebarTextColor   string `yaml:"sidebar_text_color"`
	SidebarBoldColor   string `yaml:"sidebar_bold_color"`
	BarBackgroundColor string `yaml:"bar_background_color"`
	Date2Color         string `yaml:"date2_color"`
	FrameColor         string `yaml:"frame_color"`
	HeadingIconColor   string `yaml:"heading_icon_color"`
	BoldColor          string `yaml:"bold_color"`
}

// directColours lists the role colours the block sets explicitly, in role
// order.
func (b *Block) directColours() []struct {
	name  string
	value string
} {
	all := []struct {
		name  string
		value string
	}{
		{"theme_color", b.ThemeColor},
		{"sidebar_color", b.SidebarColor},
		{"sidebar_text_color", b.SidebarTextColor},
		{"sidebar_bold_color", b.SidebarBoldColor},
		{"bar_background_color", b.BarBackgroundColor},
		{"date2_color", b.Date2Color},
		{"frame_color", b.FrameColor},
		{"heading_icon_color", b.HeadingIconColor},
		{"bold_color", b.BoldColor},
	}

	set := all[:0]
	for _, c := range all {
		if c.value != "" {
			set = append(set, c)
		}
	}
	return set
}

// HasGeneratorParams reports whether any generator field is set.
func (b *Block) HasGeneratorParams() bool {
	return b.Size != nil || b.Seed != nil || b.Chroma != nil ||
		len(b.HueRange) > 0 || len(b.LuminanceRange) > 0
}

// ResolveSource returns the block's source, inferring it from the populated
// fields when the block does not name one: direct colours win, then a
// registry name, then remote keywords, then generator parameters.
func (b *Block) ResolveSource() (palette.Source, error) {
	if b.Source != "" {
		src, err := palette.ParseSource(b.Source)
		if err != nil {
			return "", &colour.ValidationError{Field: "palette.source", Value: b.Source}
		}
		return src, nil
	}

	switch {
	case len(b.directColours()) > 0:
		return palette.SourceDirect, nil
	case b.Name != "":
		return palette.SourceRegistry, nil
	case b.Keywords != "":
		return palette.SourceRemote, nil
	case b.HasGeneratorParams():
		return palette.SourceGenerator, nil
	}
	return "", &colour.ValidationError{Field: "palette.source", Value: ""}
}

// roleCount is the number of swatch-fillable roles, used as the generator's
// default size so one generated palette covers a whole scheme.
const roleCount = 7

// Request converts a non-direct block into a resolver request.
func (b *Block) Request() (palette.Request, error) {
	src, err := b.ResolveSource()
	if err != nil {
		return palette.Request{}, err
	}

	switch src {
	case palette.SourceRegistry:
		if b.Name == "" {
			return palette.Request{}, &palette.LookupError{Name: ""}
		}
		return palette.Request{Source: palette.SourceRegistry, Name: b.Name}, nil

	case palette.SourceGenerator:
		params := palette.GeneratorParams{
			Size:   roleCount,
			Seed:   b.Seed,
			Chroma: b.Chroma,
		}
		if b.Size != nil {
			params.Size = *b.Size
		}
		if len(b.HueRange) > 0 {
			if len(b.HueRange) != 2 {
				return palette.Request{}, &palette.GenerationError{
					Reason: fmt.Sprintf("hue_range needs exactly two values, got %d", len(b.HueRange)),
				}
			}
			params.HueRange = &[2]float64{b.HueRange[0], b.HueRange[1]}
		}
		if len(b.LuminanceRange) > 0 {
			if len(b.LuminanceRange) != 2 {
				return palette.Request{}, &palette.GenerationError{
					Reason: fmt.Sprintf("luminance_range needs exactly two values, got %d", len(b.LuminanceRange)),
				}
			}
			params.LuminanceRange = &[2]float64{b.LuminanceRange[0], b.LuminanceRange[1]}
		}
		return palette.Request{Source: palette.SourceGenerator, Generator: params}, nil

	case palette.SourceRemote:
		return palette.Request{
			Source: palette.SourceRemote,
			Remote: palette.RemoteQuery{
				Keywords:   b.Keywords,
				NumResults: b.NumResults,
				OrderBy:    b.OrderBy,
			},
		}, nil
	}

	return palette.Request{}, fmt.Errorf("direct palette blocks are applied verbatim, not resolved")
}

// blockFile is the accepted layout of a standalone palette file. Both the
// palette: and config: wrappers are recognised, as is a bare block.
type blockFile struct {
	Palette *Block `yaml:"palette"`
	Config  *struct {
		Palette *Block `yaml:"palette"`
	} `yaml:"config"`
}

// LoadBlockFile reads a palette block from a YAML file. The block may sit at
// the top level or be nested under a palette: or config.palette: wrapper.
func LoadBlockFile(path string) (*Block, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported palette file extension %q (want .yaml or .yml)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var wrapped blockFile
	if err := yaml.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}
	if wrapped.Config != nil && wrapped.Config.Palette != nil {
		return wrapped.Config.Palette, nil
	}
	if wrapped.Palette != nil {
		return wrapped.Palette, nil
	}

	var block Block
	if err := yaml.Unmarshal(data, &block); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}
	return &block, nil
}
