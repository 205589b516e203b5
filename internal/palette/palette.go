// Package palette provides named, generated, and remotely fetched colour
// palettes together with the resolver that dispatches between them.
package palette

import (
	"fmt"
	"strings"

	"github.com/athola/simple-resume/internal/colour"
)

// Source identifies where a palette's swatches came from.
type Source string

const (
	// SourceRegistry resolves a palette by name from the built-in registry.
	SourceRegistry Source = "registry"
	// SourceGenerator synthesises a palette from seeded parameters.
	SourceGenerator Source = "generator"
	// SourceRemote fetches palettes from the remote palette service.
	SourceRemote Source = "remote"
	// SourceDirect carries caller-supplied role colours verbatim.
	SourceDirect Source = "direct"
)

// ParseSource converts a string into a Source.
// Returns an error if the string is not a recognised source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceRegistry:
		return SourceRegistry, nil
	case SourceGenerator:
		return SourceGenerator, nil
	case SourceRemote:
		return SourceRemote, nil
	case SourceDirect:
		return SourceDirect, nil
	}
	return "", fmt.Errorf("unsupported palette source: %q (valid: registry, generator, remote, direct)", s)
}

// Palette is an ordered set of hex swatches with provenance metadata.
// Treat values as immutable once constructed; Swatches returns a copy.
type Palette struct {
	name     string
	swatches []string
	source   Source
	metadata map[string]any
}

// New constructs a Palette, validating every swatch.
// Swatch ordering is significant and preserved: swatches are mapped
// positionally onto colour roles downstream.
func New(name string, swatches []string, source Source, metadata map[string]any) (Palette, error) {
	if len(swatches) == 0 {
		return Palette{}, &GenerationError{Reason: fmt.Sprintf("palette %q has no swatches", name)}
	}
	for _, s := range swatches {
		if !colour.IsValidHex(s) {
			return Palette{}, &colour.ValidationError{Field: "swatches", Value: s}
		}
	}

	p := Palette{
		name:     name,
		swatches: append([]string(nil), swatches...),
		source:   source,
	}
	if len(metadata) > 0 {
		p.metadata = make(map[string]any, len(metadata))
		for k, v := range metadata {
			p.metadata[k] = v
		}
	}
	return p, nil
}

// Name returns the palette name.
func (p Palette) Name() string { return p.name }

// Source returns the palette's provenance.
func (p Palette) Source() Source { return p.source }

// Len returns the number of swatches.
func (p Palette) Len() int { return len(p.swatches) }

// Swatches returns a copy of the ordered swatch list.
func (p Palette) Swatches() []string {
	return append([]string(nil), p.swatches...)
}

// Metadata returns a copy of the palette metadata.
func (p Palette) Metadata() map[string]any {
	out := make(map[string]any, len(p.metadata))
	for k, v := range p.metadata {
		out[k] = v
	}
	return out
}

// String returns a human-readable description of the palette.
func (p Palette) String() string {
	return fmt.Sprintf("%s (%s, %d swatches)", p.name, p.source, len(p.swatches))
}
