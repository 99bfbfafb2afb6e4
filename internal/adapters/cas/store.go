// Package cas implements a content-addressed on-disk cache for fetched pom
// documents.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.PomStore using one file per document under a cache
// directory. File names derive from the xxhash of the cache key, so keys can
// be arbitrary repository URLs.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	cleaned := filepath.Clean(dir)
	if err := os.MkdirAll(cleaned, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create pom cache directory"), "dir", cleaned)
	}
	return &Store{dir: cleaned}, nil
}

// DefaultDir returns the cache directory: PIN_CACHE_DIR when set, otherwise
// a pin-specific path under the user cache root.
func DefaultDir() (string, error) {
	if dir := os.Getenv("PIN_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine user cache directory")
	}
	return filepath.Join(base, "pin", "poms"), nil
}

// Get returns the cached document for key, or false when absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	//nolint:gosec // Path is derived from a hash under the cache dir
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read cached pom"), "key", key)
	}
	return data, true, nil
}

// Put stores the document for key.
func (s *Store) Put(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is derived from a hash under the cache dir
	if err := os.WriteFile(s.pathFor(key), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cached pom"), "key", key)
	}
	return nil
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.pom", xxhash.Sum64String(key)))
}

var _ ports.PomStore = (*Store)(nil)
