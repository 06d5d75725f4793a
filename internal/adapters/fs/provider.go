package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceProvider = (*Provider)(nil)

// Provider implements ports.SourceProvider over a primary root followed by
// an ordered list of fallback roots. Lookups return the first root that
// contains the path.
type Provider struct {
	roots []string
}

// NewProvider creates a Provider. Empty and duplicate roots are dropped.
func NewProvider(primary string, fallbacks ...string) *Provider {
	roots := []string{filepath.Clean(primary)}
	for _, r := range fallbacks {
		if r == "" {
			continue
		}
		r = filepath.Clean(r)
		if !slices.Contains(roots, r) {
			roots = append(roots, r)
		}
	}
	return &Provider{roots: roots}
}

// NewConfigProvider creates a Provider overlaying cfg.Root with the auxiliary
// roots and the load paths of every configured dialect.
func NewConfigProvider(cfg *domain.Config) *Provider {
	fallbacks := slices.Clone(cfg.AuxRoots)
	for _, d := range cfg.Dialects {
		switch v := d.(type) {
		case domain.SCSS:
			fallbacks = append(fallbacks, v.LoadPaths...)
		case domain.SASS:
			fallbacks = append(fallbacks, v.LoadPaths...)
		}
	}
	return NewProvider(cfg.Root, fallbacks...)
}

// Root returns the primary root.
func (p *Provider) Root() string {
	return p.roots[0]
}

// Exists reports whether sp exists below any root.
func (p *Provider) Exists(sp domain.SourcePath) bool {
	_, _, ok := p.lookup(sp)
	return ok
}

// ExistsUnder reports whether sp exists below root.
func (p *Provider) ExistsUnder(root string, sp domain.SourcePath) bool {
	full, ok := join(root, sp)
	if !ok {
		return false
	}
	_, err := os.Stat(full)
	return err == nil
}

// IsDir reports whether sp is a directory in the first root that has it.
func (p *Provider) IsDir(sp domain.SourcePath) bool {
	_, info, ok := p.lookup(sp)
	return ok && info.IsDir()
}

// Read returns the content of sp.
func (p *Provider) Read(sp domain.SourcePath) (string, error) {
	full, err := p.FullPath(sp)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full) //nolint:gosec // Path is confined to a configured root
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read source"), "path", full)
	}
	return string(data), nil
}

// List returns the sorted entry names of directory sp.
func (p *Provider) List(sp domain.SourcePath) ([]string, error) {
	full, err := p.FullPath(sp)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "path", full)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// FullPath returns the location of sp in the first root that has it.
func (p *Provider) FullPath(sp domain.SourcePath) (string, error) {
	full, _, ok := p.lookup(sp)
	if !ok {
		return "", zerr.With(domain.ErrSourceNotFound, "path", sp.String())
	}
	return full, nil
}

func (p *Provider) lookup(sp domain.SourcePath) (string, iofs.FileInfo, bool) {
	for _, root := range p.roots {
		full, ok := join(root, sp)
		if !ok {
			return "", nil, false
		}
		if info, err := os.Stat(full); err == nil {
			return full, info, true
		}
	}
	return "", nil, false
}

// join rejects paths that would escape root.
func join(root string, sp domain.SourcePath) (string, bool) {
	s := sp.String()
	if s == ".." || strings.HasPrefix(s, "../") || filepath.IsAbs(filepath.FromSlash(s)) {
		return "", false
	}
	return filepath.Join(root, filepath.FromSlash(s)), true
}
