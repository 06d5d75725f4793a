// Package fingerprint persists content fingerprints of compiled sources.
package fingerprint

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	goccy "github.com/goccy/go-json"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore on top of one JSON document keyed
// by source path.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[domain.SourcePath]domain.Fingerprint
}

// NewStore loads the store at path. A missing file yields an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[domain.SourcePath]domain.Fingerprint),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read fingerprint store"), "path", s.path)
	}
	if len(data) == 0 {
		return nil
	}

	if err := goccy.Unmarshal(data, &s.entries); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode fingerprint store"), "path", s.path)
	}
	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := goccy.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode fingerprint store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for fingerprint store")
	}

	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and comes from configuration
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint store")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint store")
	}
	return nil
}

// Get returns the fingerprint recorded for source, or nil if there is none.
func (s *Store) Get(source domain.SourcePath) (*domain.Fingerprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fp, ok := s.entries[source]
	if !ok {
		return nil, nil
	}
	return &fp, nil
}

// Put records fp and flushes the store to disk.
func (s *Store) Put(fp domain.Fingerprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[fp.Source] = fp
	return s.save()
}
