package palette

import (
	"fmt"
	"math/rand"

	"github.com/athola/simple-resume/internal/colour"
)

// Generator defaults. The fixed default seed keeps unseeded generations
// reproducible run to run.
const (
	DefaultSeed      int64   = 42
	DefaultChroma    float64 = 0.12
	defaultHueMin            = 0
	defaultHueMax            = 360
	defaultLumMin            = 0.35
	defaultLumMax            = 0.85
	hueJitterFraction        = 0.5
)

// GeneratorParams configures deterministic palette synthesis.
// Zero-valued ranges fall back to the documented defaults.
type GeneratorParams struct {
	// Size is the number of swatches to produce. Must be positive.
	Size int
	// Seed fixes the pseudo-random sequence. Nil selects DefaultSeed.
	Seed *int64
	// HueRange bounds the hue spread in degrees, within [0, 360].
	HueRange *[2]float64
	// Chroma in [0, 1] sets the saturation of every swatch.
	Chroma *float64
	// LuminanceRange bounds the lightness spread, within [0, 1].
	LuminanceRange *[2]float64
}

// Generate synthesises a reproducible palette: hues evenly spaced across the
// hue range with bounded seeded jitter, luminance linearly spread across the
// luminance range, combined through HSL. Calling twice with identical
// parameters yields an identical sequence.
func Generate(params GeneratorParams) ([]string, error) {
	if params.Size <= 0 {
		return nil, &GenerationError{Reason: fmt.Sprintf("size must be positive, got %d", params.Size)}
	}

	seed := DefaultSeed
	if params.Seed != nil {
		seed = *params.Seed
	}

	hueMin, hueMax := float64(defaultHueMin), float64(defaultHueMax)
	if params.HueRange != nil {
		hueMin, hueMax = params.HueRange[0], params.HueRange[1]
	}
	if hueMin > hueMax {
		return nil, &GenerationError{Reason: fmt.Sprintf("hue_range min %g exceeds max %g", hueMin, hueMax)}
	}
	if hueMin < 0 || hueMax > 360 {
		return nil, &GenerationError{Reason: fmt.Sprintf("hue_range [%g, %g] outside [0, 360]", hueMin, hueMax)}
	}

	lumMin, lumMax := float64(defaultLumMin), float64(defaultLumMax)
	if params.LuminanceRange != nil {
		lumMin, lumMax = params.LuminanceRange[0], params.LuminanceRange[1]
	}
	if lumMin > lumMax {
		return nil, &GenerationError{Reason: fmt.Sprintf("luminance_range min %g exceeds max %g", lumMin, lumMax)}
	}
	if lumMin < 0 || lumMax > 1 {
		return nil, &GenerationError{Reason: fmt.Sprintf("luminance_range [%g, %g] outside [0, 1]", lumMin, lumMax)}
	}

	chroma := DefaultChroma
	if params.Chroma != nil {
		chroma = *params.Chroma
	}
	if chroma < 0 || chroma > 1 {
		return nil, &GenerationError{Reason: fmt.Sprintf("chroma %g outside [0, 1]", chroma)}
	}

	// The generator owns its RNG state for the duration of one call; nothing
	// is shared, so identical inputs walk an identical sequence.
	rng := rand.New(rand.NewSource(seed))

	hueSpan := hueMax - hueMin
	hueStep := hueSpan
	if params.Size > 1 {
		hueStep = hueSpan / float64(params.Size)
	}

	lumStep := 0.0
	if params.Size > 1 {
		lumStep = (lumMax - lumMin) / float64(params.Size-1)
	}

	swatches := make([]string, 0, params.Size)
	for i := 0; i < params.Size; i++ {
		hue := hueMin + hueStep*float64(i)
		// Bounded jitter keeps consecutive palettes visually distinct while
		// staying reproducible for a fixed seed.
		jitter := (rng.Float64() - 0.5) * hueStep * hueJitterFraction
		hue = clamp(hue+jitter, hueMin, hueMax)

		lum := clamp(lumMin+lumStep*float64(i), 0, 1)

		swatches = append(swatches, colour.HSLToRGB(hue, chroma, lum).Hex())
	}

	return swatches, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
