package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/athola/simple-resume/internal/colour"
	"github.com/athola/simple-resume/internal/palette"
	"github.com/athola/simple-resume/internal/palette/cache"
	"github.com/athola/simple-resume/internal/palette/colourlovers"
	"github.com/athola/simple-resume/internal/scheme"
)

var (
	// Shared palette selection flags (resolve and generate)
	paletteSource         string
	paletteName           string
	paletteKeywords       string
	paletteNumResults     int
	paletteOrderBy        string
	paletteSize           int
	paletteSeed           int64
	paletteChroma         float64
	paletteHueRange       []float64
	paletteLuminanceRange []float64

	// Resolve command flags
	resolveFile    string
	resolveStrict  bool
	resolvePreview bool

	// Generate command flags
	generatePreview bool
)

// paletteCmd groups the palette subcommands.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Resolve, generate, and list colour palettes",
}

// resolveCmd runs the full configuration pipeline.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a palette into a finalized colour scheme",
	Long: `Resolve a palette block into a finalized colour scheme.

The palette block comes from a YAML file (--file) or from flags. Every
role colour the block leaves unset is derived: sidebar text picks a
legible colour for the sidebar, the heading icon reuses the theme colour
when it is legible, bold variants are darkened from their base colours.

Examples:
  # Resolve a built-in palette
  simple-resume palette resolve --name ocean

  # Resolve a palette file, failing instead of falling back
  simple-resume palette resolve --file palette.yaml --strict

  # Generate a palette and resolve it into a scheme
  simple-resume palette resolve --source generator --seed 7 --chroma 0.3

  # Fetch a palette from ColourLovers
  simple-resume palette resolve --source remote --keywords ocean`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

// generateCmd runs the deterministic generator directly.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a deterministic palette",
	Long: `Generate a palette from seeded parameters.

Identical parameters always produce identical swatches; vary --seed to
explore alternatives.

Examples:
  # Seven swatches with the default seed
  simple-resume palette generate

  # A tighter blue range with previews
  simple-resume palette generate --size 5 --hue-range 200,240 --preview`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// listCmd prints the built-in palette catalogue.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in palettes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	for _, cmd := range []*cobra.Command{resolveCmd, generateCmd} {
		cmd.Flags().IntVar(&paletteSize, "size", 0, "number of swatches to generate")
		cmd.Flags().Int64Var(&paletteSeed, "seed", 0, "generator seed (default 42)")
		cmd.Flags().Float64Var(&paletteChroma, "chroma", 0, "generator chroma in [0, 1] (default 0.12)")
		cmd.Flags().Float64SliceVar(&paletteHueRange, "hue-range", nil, "hue range in degrees, e.g. 200,240")
		cmd.Flags().Float64SliceVar(&paletteLuminanceRange, "luminance-range", nil, "luminance range, e.g. 0.3,0.7")
	}

	resolveCmd.Flags().StringVarP(&resolveFile, "file", "f", "", "palette YAML file")
	resolveCmd.Flags().StringVar(&paletteSource, "source", "", "palette source (registry, generator, remote)")
	resolveCmd.Flags().StringVarP(&paletteName, "name", "n", "", "registry palette name")
	resolveCmd.Flags().StringVarP(&paletteKeywords, "keywords", "k", "", "remote search keywords")
	resolveCmd.Flags().IntVar(&paletteNumResults, "num-results", 0, "remote result count (1-50)")
	resolveCmd.Flags().StringVar(&paletteOrderBy, "order-by", "", "remote ordering column")
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "fail on palette errors instead of using the default scheme")
	resolveCmd.Flags().BoolVar(&resolvePreview, "preview", false, "show colour previews even when stdout is not a terminal")

	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show colour previews even when stdout is not a terminal")

	paletteCmd.AddCommand(resolveCmd)
	paletteCmd.AddCommand(generateCmd)
	paletteCmd.AddCommand(listCmd)
}

// newResolver wires the registry and the remote client. A cache failure
// only costs caching, not the command.
func newResolver(logger hclog.Logger) *palette.Resolver {
	opts := colourlovers.Options{Logger: logger.Named("colourlovers")}

	dir, err := cache.DefaultDir()
	if err == nil {
		store, storeErr := cache.NewDir(dir)
		if storeErr == nil {
			opts.Store = store
		} else {
			err = storeErr
		}
	}
	if err != nil {
		logger.Warn("palette cache unavailable, fetching uncached", "error", err)
	}

	return &palette.Resolver{
		Registry: palette.DefaultRegistry(),
		Remote:   colourlovers.New(opts),
	}
}

// runResolve executes the resolve command.
func runResolve(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	block, err := resolveBlock(cmd)
	if err != nil {
		return err
	}

	pipeline := scheme.New(scheme.Options{
		Resolver: newResolver(logger),
		Logger:   logger,
		Strict:   resolveStrict,
	})

	result, err := pipeline.Run(cmd.Context(), scheme.Config{Palette: block})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Diagnostic != nil {
		fmt.Fprintln(os.Stderr, color.YellowString("palette resolution failed (%v); using the default scheme", result.Diagnostic.Err))
	}

	fmt.Fprintln(out, color.New(color.Bold).Sprintf("scheme: %s", result.Scheme.Name))
	printScheme(out, result.Scheme, showPreviews(resolvePreview))
	return nil
}

// resolveBlock builds the palette block from --file or the selection flags.
// No file and no flags means no block: the default scheme, fully derived.
func resolveBlock(cmd *cobra.Command) (*scheme.Block, error) {
	if resolveFile != "" {
		return scheme.LoadBlockFile(resolveFile)
	}

	block := &scheme.Block{
		Source:   paletteSource,
		Name:     paletteName,
		Keywords: paletteKeywords,
		OrderBy:  paletteOrderBy,
	}
	if paletteNumResults > 0 {
		block.NumResults = paletteNumResults
	}
	applyGeneratorFlags(cmd.Flags(), block)

	if block.Source == "" && block.Name == "" && block.Keywords == "" && !block.HasGeneratorParams() {
		return nil, nil
	}
	return block, nil
}

// applyGeneratorFlags copies the generator flags the user actually set.
// Zero is a valid seed, so presence is tracked through Changed, not value.
func applyGeneratorFlags(flags *pflag.FlagSet, block *scheme.Block) {
	if flags.Changed("size") {
		size := paletteSize
		block.Size = &size
	}
	if flags.Changed("seed") {
		seed := paletteSeed
		block.Seed = &seed
	}
	if flags.Changed("chroma") {
		chroma := paletteChroma
		block.Chroma = &chroma
	}
	if flags.Changed("hue-range") {
		block.HueRange = paletteHueRange
	}
	if flags.Changed("luminance-range") {
		block.LuminanceRange = paletteLuminanceRange
	}
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	block := &scheme.Block{Source: string(palette.SourceGenerator)}
	applyGeneratorFlags(cmd.Flags(), block)

	req, err := block.Request()
	if err != nil {
		return err
	}

	swatches, err := palette.Generate(req.Generator)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	preview := showPreviews(generatePreview)
	for _, hex := range swatches {
		if preview {
			fmt.Fprintf(out, "%s  %s\n", colour.Preview(hex, 8), hex)
		} else {
			fmt.Fprintln(out, hex)
		}
	}
	return nil
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	registry := palette.DefaultRegistry()
	preview := showPreviews(false)

	table := NewTable([]string{"NAME", "SWATCHES", "COLOURS", "ATTRIBUTION"})
	for _, name := range registry.Names() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}

		swatches := p.Swatches()
		colours := make([]string, 0, len(swatches))
		for _, hex := range swatches {
			if preview {
				colours = append(colours, colour.Preview(hex, 2))
			} else {
				colours = append(colours, hex)
			}
		}

		attribution, _ := p.Metadata()["attribution"].(string)
		table.AddRow([]string{p.Name(), fmt.Sprintf("%d", p.Len()), strings.Join(colours, " "), attribution})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// printScheme writes the role table, with preview blocks when wanted.
func printScheme(out io.Writer, s scheme.ColorScheme, preview bool) {
	roles := []struct {
		role string
		hex  string
	}{
		{"theme", s.ThemeColor},
		{"sidebar", s.SidebarColor},
		{"sidebar_text", s.SidebarTextColor},
		{"sidebar_bold", s.SidebarBoldColor},
		{"sidebar_icon", s.SidebarIconColor},
		{"bar_background", s.BarBackgroundColor},
		{"date2", s.Date2Color},
		{"frame", s.FrameColor},
		{"heading_icon", s.HeadingIconColor},
		{"bold", s.BoldColor},
	}

	headers := []string{"ROLE", "HEX"}
	if preview {
		headers = append(headers, "PREVIEW")
	}

	table := NewTable(headers)
	for _, r := range roles {
		row := []string{r.role, r.hex}
		if preview {
			row = append(row, colour.Preview(r.hex, 8))
		}
		table.AddRow(row)
	}
	fmt.Fprint(out, table.Render())
}

// showPreviews decides whether ANSI previews go to stdout: forced by flag,
// or automatic on a terminal.
func showPreviews(forced bool) bool {
	return forced || term.IsTerminal(int(os.Stdout.Fd()))
}
