package palette

import (
	"sort"
	"strings"
)

// Registry is a name-to-palette lookup table. It is built once at startup
// and read-only afterwards: Get takes no lock, and Register must not be
// called concurrently with reads. Construct isolated registries in tests
// rather than sharing a global.
type Registry struct {
	palettes map[string]Palette
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{palettes: make(map[string]Palette)}
}

// DefaultRegistry returns a registry pre-loaded with the built-in catalogue.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtinPalettes() {
		r.Register(b)
	}
	return r
}

// Register adds a palette, overwriting any existing entry with the same
// name (last-write-wins). Intended for setup and tests only.
func (r *Registry) Register(p Palette) {
	r.palettes[strings.ToLower(p.Name())] = p
}

// Get returns the palette registered under name (case-insensitive).
// An unknown name yields a *LookupError carrying nearby known names.
func (r *Registry) Get(name string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := r.palettes[key]; ok {
		return p, nil
	}
	return Palette{}, &LookupError{Name: name, Nearest: r.nearest(key)}
}

// Names returns all registered palette names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.palettes))
	for _, p := range r.palettes {
		names = append(names, p.Name())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered palettes.
func (r *Registry) Len() int { return len(r.palettes) }

// nearest returns known names that share a prefix or substring with the
// missed key. A cheap heuristic: good enough for a "did you mean" hint.
func (r *Registry) nearest(key string) []string {
	if key == "" {
		return nil
	}
	var hits []string
	for lower, p := range r.palettes {
		if strings.HasPrefix(lower, key[:1]) || strings.Contains(lower, key) || strings.Contains(key, lower) {
			hits = append(hits, p.Name())
		}
	}
	sort.Strings(hits)
	if len(hits) > 3 {
		hits = hits[:3]
	}
	return hits
}

// builtinPalettes returns the built-in palette catalogue.
func builtinPalettes() []Palette {
	mk := func(name string, swatches []string, attribution string) Palette {
		p, err := New(name, swatches, SourceRegistry, map[string]any{"attribution": attribution})
		if err != nil {
			panic(err) // built-in definitions are fixed literals
		}
		return p
	}

	return []Palette{
		mk("ocean", []string{"#003049", "#669BBC", "#FDF0D5", "#780000", "#C1121F"}, "coolors classic"),
		mk("sunset", []string{"#FFB703", "#FB8500", "#8ECAE6", "#219EBC", "#023047"}, "coolors classic"),
		mk("forest", []string{"#2D6A4F", "#95D5B2", "#F1FAEE", "#1B4332", "#40916C"}, "coolors classic"),
		mk("slate", []string{"#343A40", "#ADB5BD", "#F8F9FA", "#495057", "#868E96"}, "open color"),
		mk("dusk", []string{"#355070", "#6D597A", "#B56576", "#E56B6F", "#EAAC8B"}, "coolors classic"),
		mk("paper", []string{"#0395DE", "#F6F6F6", "#DFDFDF", "#616161", "#757575"}, "simple-resume default"),
	}
}
