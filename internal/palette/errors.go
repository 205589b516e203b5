package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/athola/simple-resume/internal/colour"
)

// LookupError reports an unknown registry name.
type LookupError struct {
	// Name is the lookup key that missed.
	Name string
	// Nearest holds known names close to the miss, for diagnostics.
	Nearest []string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if len(e.Nearest) > 0 {
		return fmt.Sprintf("unknown palette %q (did you mean: %s)", e.Name, strings.Join(e.Nearest, ", "))
	}
	return fmt.Sprintf("unknown palette %q", e.Name)
}

// GenerationError reports invalid generator parameters or an otherwise
// unbuildable palette.
type GenerationError struct {
	Reason string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return "palette generation failed: " + e.Reason
}

// RemoteError reports a failure fetching palettes from the remote service:
// a blocked or invalid URL, transport failure, timeout, non-success status,
// or malformed payload.
type RemoteError struct {
	// Op describes the step that failed (e.g., "validate url", "fetch").
	Op  string
	Err error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote palette %s: %v", e.Op, e.Err)
	}
	return "remote palette " + e.Op
}

// Unwrap returns the underlying cause.
func (e *RemoteError) Unwrap() error { return e.Err }

// IsPaletteError reports whether err belongs to the palette error family:
// colour validation, registry lookup, generation, or remote failures.
// The configuration pipeline uses this to decide between fallback and abort.
func IsPaletteError(err error) bool {
	var (
		validationErr *colour.ValidationError
		lookupErr     *LookupError
		generationErr *GenerationError
		remoteErr     *RemoteError
	)
	return errors.As(err, &validationErr) ||
		errors.As(err, &lookupErr) ||
		errors.As(err, &generationErr) ||
		errors.As(err, &remoteErr)
}
