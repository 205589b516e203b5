package palette

import (
	"context"
	"fmt"
)

// RemoteQuery names the palettes wanted from the remote palette service.
type RemoteQuery struct {
	Keywords   string
	NumResults int
	OrderBy    string
}

// RemoteClient fetches palettes from a remote service. Implemented by
// colourlovers.Client; tests substitute counting doubles.
type RemoteClient interface {
	Fetch(ctx context.Context, query RemoteQuery) ([]Palette, error)
}

// Request selects one resolution strategy. The source set is closed:
// requests carry exactly the parameters their source consumes.
type Request struct {
	Source Source

	// Name selects a registry palette (SourceRegistry).
	Name string

	// Generator parameterises synthesis (SourceGenerator).
	Generator GeneratorParams

	// Remote names the remote query (SourceRemote).
	Remote RemoteQuery
}

// Resolution is the outcome of resolving a request: ordered swatches plus
// provenance metadata describing how they were obtained.
type Resolution struct {
	Swatches []string
	Metadata map[string]any
}

// Resolver dispatches palette requests to the registry, the generator, or
// the remote client. Dependencies are injected explicitly; there is no
// hidden global registry.
type Resolver struct {
	Registry *Registry
	Remote   RemoteClient
}

// Resolve runs the strategy named by the request's source. Errors from the
// chosen strategy propagate unchanged; the resolver introduces no error
// kinds of its own. SourceDirect never reaches the resolver: direct colour
// blocks are copied verbatim by the configuration pipeline.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolution, error) {
	switch req.Source {
	case SourceRegistry:
		return r.resolveRegistry(req)
	case SourceGenerator:
		return resolveGenerator(req)
	case SourceRemote:
		return r.resolveRemote(ctx, req)
	case SourceDirect:
		return nil, fmt.Errorf("direct palette blocks are applied verbatim, not resolved")
	}
	return nil, fmt.Errorf("unsupported palette source: %q", req.Source)
}

func (r *Resolver) resolveRegistry(req Request) (*Resolution, error) {
	if req.Name == "" {
		return nil, &LookupError{Name: ""}
	}
	if r.Registry == nil {
		return nil, &LookupError{Name: req.Name}
	}

	p, err := r.Registry.Get(req.Name)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Swatches: p.Swatches(),
		Metadata: map[string]any{
			"source":      string(SourceRegistry),
			"name":        p.Name(),
			"size":        p.Len(),
			"attribution": p.Metadata()["attribution"],
		},
	}, nil
}

func resolveGenerator(req Request) (*Resolution, error) {
	swatches, err := Generate(req.Generator)
	if err != nil {
		return nil, err
	}

	seed := DefaultSeed
	if req.Generator.Seed != nil {
		seed = *req.Generator.Seed
	}
	chroma := DefaultChroma
	if req.Generator.Chroma != nil {
		chroma = *req.Generator.Chroma
	}

	meta := map[string]any{
		"source": string(SourceGenerator),
		"size":   len(swatches),
		"seed":   seed,
		"chroma": chroma,
	}
	if req.Generator.HueRange != nil {
		meta["hue_range"] = []float64{req.Generator.HueRange[0], req.Generator.HueRange[1]}
	}
	if req.Generator.LuminanceRange != nil {
		meta["luminance_range"] = []float64{req.Generator.LuminanceRange[0], req.Generator.LuminanceRange[1]}
	}

	return &Resolution{Swatches: swatches, Metadata: meta}, nil
}

func (r *Resolver) resolveRemote(ctx context.Context, req Request) (*Resolution, error) {
	if r.Remote == nil {
		return nil, &RemoteError{Op: "fetch", Err: fmt.Errorf("no remote client configured")}
	}

	palettes, err := r.Remote.Fetch(ctx, req.Remote)
	if err != nil {
		return nil, err
	}
	if len(palettes) == 0 {
		return nil, &RemoteError{Op: "fetch", Err: fmt.Errorf("service returned no palettes")}
	}

	// First palette wins by convention.
	p := palettes[0]
	return &Resolution{
		Swatches: p.Swatches(),
		Metadata: map[string]any{
			"source":      string(SourceRemote),
			"name":        p.Name(),
			"size":        p.Len(),
			"attribution": p.Metadata()["attribution"],
		},
	}, nil
}
