// Package cache provides the on-disk store for remote palette responses.
// Writes are atomic (write-to-temp then rename) so concurrent readers never
// observe a partially written entry; entries are never edited in place.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envCacheDir overrides the default cache directory when set.
const envCacheDir = "SIMPLE_RESUME_PALETTE_CACHE_DIR"

// Store reads and writes opaque payloads by key. Write must be atomic:
// a reader sees either the previous payload or the new one, never a mix.
type Store interface {
	// Read returns the payload for key, or ok=false if no entry exists.
	Read(key string) (data []byte, ok bool, err error)
	// Write replaces the payload for key atomically.
	Write(key string, data []byte) error
}

// Dir is a Store backed by one file per key inside a directory.
type Dir struct {
	path string
}

// NewDir creates (if needed) and opens a directory-backed store.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// DefaultDir returns the palette cache directory: the env override when set,
// otherwise a simple-resume subdirectory of the user cache dir.
func DefaultDir() (string, error) {
	if custom := os.Getenv(envCacheDir); custom != "" {
		return custom, nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "simple-resume", "palettes"), nil
	}
	return filepath.Join(cacheDir, "simple-resume", "palettes"), nil
}

// Path returns the directory backing the store.
func (d *Dir) Path() string { return d.path }

// Read implements Store. A missing entry is not an error.
func (d *Dir) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return data, true, nil
}

// Write implements Store: the payload lands in a temp file in the same
// directory and is renamed over the destination.
func (d *Dir) Write(key string, data []byte) error {
	tmp, err := os.CreateTemp(d.path, entryFilename(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err := os.Rename(tmpPath, d.entryPath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to commit cache entry %s: %w", key, err)
	}
	return nil
}

func (d *Dir) entryPath(key string) string {
	return filepath.Join(d.path, entryFilename(key))
}

// entryFilename maps a key to a flat filename. Keys are content hashes, but
// separators are stripped regardless so a malformed key cannot escape the
// cache directory.
func entryFilename(key string) string {
	key = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return key + ".json"
}
