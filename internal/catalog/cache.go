package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muse-labs/trackboard/internal/logging"
)

// entry is one cached catalog keyed by file identity.
type entry struct {
	catalog *Catalog

	// contentHash is the identity key: SHA-256 of the file content.
	contentHash string

	// size and modTime are the cheap freshness pre-check. When both
	// match the current stat, the content is assumed unchanged and the
	// file is not re-hashed.
	size    int64
	modTime time.Time

	loadedAt time.Time
}

// Store caches loaded catalogs keyed by source-file identity. It
// guarantees at most one load per distinct content per process and never
// serves an entry whose backing file has changed.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	enabled bool
	opts    Options

	// loads counts actual parses, for tests and debug logging.
	loads int
}

// NewStore creates a catalog cache. When enabled is false every Get loads
// from disk.
func NewStore(enabled bool, opts Options) *Store {
	return &Store{
		entries: make(map[string]*entry),
		enabled: enabled,
		opts:    opts,
	}
}

// Get returns the catalog for path, loading it only when the store has no
// fresh entry for the file's current content.
func (s *Store) Get(ctx context.Context, path string) (*Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if !s.enabled {
		return s.load(ctx, abs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx)

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			delete(s.entries, abs)
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, abs)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}

	if e, ok := s.entries[abs]; ok {
		if e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
			return e.catalog, nil
		}

		// Stat changed; the content decides. A touch without a content
		// change refreshes the stat metadata and keeps the entry.
		data, readErr := os.ReadFile(abs)
		if readErr != nil {
			return nil, fmt.Errorf("reading %s: %w", abs, readErr)
		}
		hash := hashContent(data)
		if hash == e.contentHash {
			e.size = info.Size()
			e.modTime = info.ModTime()
			return e.catalog, nil
		}

		log.Debug().
			Str("component", "catalog").
			Str("path", abs).
			Msg("source content changed, reloading")
		return s.storeLocked(ctx, abs, data, hash, info)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}
	return s.storeLocked(ctx, abs, data, hashContent(data), info)
}

// storeLocked parses data and replaces the entry for abs. Caller holds mu.
func (s *Store) storeLocked(
	ctx context.Context,
	abs string,
	data []byte,
	hash string,
	info os.FileInfo,
) (*Catalog, error) {
	c, err := Parse(ctx, data, s.opts)
	if err != nil {
		delete(s.entries, abs)
		return nil, fmt.Errorf("%s: %w", abs, err)
	}

	s.loads++
	s.entries[abs] = &entry{
		catalog:     c,
		contentHash: hash,
		size:        info.Size(),
		modTime:     info.ModTime(),
		loadedAt:    time.Now(),
	}
	return c, nil
}

// load bypasses the cache entirely (disabled store).
func (s *Store) load(ctx context.Context, abs string) (*Catalog, error) {
	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	return Load(ctx, abs, s.opts)
}

// Invalidate drops the entry for path. Idempotent.
func (s *Store) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, abs)
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

// Loads returns the number of parses performed so far.
func (s *Store) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// IsEnabled reports whether caching is active.
func (s *Store) IsEnabled() bool {
	return s.enabled
}

func hashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
