// Package resolver locates the files referenced by import targets.
package resolver

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	stylusIndex = "index.styl"
	stylusGlob  = "/*"
)

// Resolver maps import targets to source paths. Every existence check goes
// through the SourceProvider, so overlay roots behave the same everywhere.
type Resolver struct {
	provider ports.SourceProvider
}

// New creates a Resolver backed by provider.
func New(provider ports.SourceProvider) *Resolver {
	return &Resolver{provider: provider}
}

type candidate struct {
	name     string
	strategy domain.Strategy
}

// Locate resolves a single import target found in a file under sourceDir.
func (r *Resolver) Locate(d domain.Dialect, sourceDir, target string) (domain.ResolvedFile, error) {
	switch v := d.(type) {
	case domain.SCSS:
		return r.locateSass(sourceDir, target, v.ImportExtensions(), v.LoadPaths)
	case domain.SASS:
		return r.locateSass(sourceDir, target, v.ImportExtensions(), v.LoadPaths)
	case domain.LESS:
		return r.locateLess(sourceDir, target)
	case domain.Stylus:
		return r.locateExact(sourceDir, target)
	default:
		return domain.ResolvedFile{}, zerr.With(domain.ErrUnknownDialect, "dialect", string(d.Name()))
	}
}

// Resolve expands target into every file it refers to. Only Stylus directory
// imports can yield more than one file.
func (r *Resolver) Resolve(d domain.Dialect, sourceDir, target string) ([]domain.ResolvedFile, error) {
	if _, ok := d.(domain.Stylus); !ok {
		f, err := r.Locate(d, sourceDir, target)
		if err != nil {
			return nil, err
		}
		return []domain.ResolvedFile{f}, nil
	}
	return r.resolveStylus(sourceDir, target)
}

// locateSass tries, for every extension candidate, the plain name and then
// the partial name next to the importing file, then the same names under
// each load path in order.
func (r *Resolver) locateSass(sourceDir, target string, exts, loadPaths []string) (domain.ResolvedFile, error) {
	importDir, candidates := sassCandidates(target, exts)

	for _, c := range candidates {
		p := domain.JoinSourcePath(sourceDir, importDir, c.name)
		if r.provider.Exists(p) {
			return r.found(p, c.strategy), nil
		}
	}

	for _, root := range loadPaths {
		for _, c := range candidates {
			p := domain.JoinSourcePath(importDir, c.name)
			if r.provider.ExistsUnder(root, p) {
				return domain.ResolvedFile{
					Path:     p,
					FullPath: filepath.Join(root, filepath.FromSlash(p.String())),
					Strategy: domain.StrategyLoadPath,
				}, nil
			}
		}
	}

	return domain.ResolvedFile{}, notFound(sourceDir, target)
}

func sassCandidates(target string, exts []string) (string, []candidate) {
	importDir := path.Dir(target)
	if importDir == "." {
		importDir = ""
	}
	file := path.Base(target)

	names := []string{file}
	if ext := path.Ext(file); ext == "" {
		names = names[:0]
		for _, e := range exts {
			names = append(names, file+"."+e)
		}
	}

	partial := !strings.HasPrefix(file, domain.PartialPrefix)
	candidates := make([]candidate, 0, 2*len(names))
	for _, n := range names {
		candidates = append(candidates, candidate{name: n, strategy: domain.StrategyPrimary})
		if partial {
			candidates = append(candidates, candidate{name: domain.PartialPrefix + n, strategy: domain.StrategyPartial})
		}
	}
	return importDir, candidates
}

func (r *Resolver) locateLess(sourceDir, target string) (domain.ResolvedFile, error) {
	if !strings.HasSuffix(target, domain.LESS{}.Extension()) {
		target += domain.LESS{}.Extension()
	}

	p := domain.JoinSourcePath(sourceDir, target)
	if r.provider.Exists(p) {
		return r.found(p, domain.StrategyPrimary), nil
	}

	if file := path.Base(target); !strings.HasPrefix(file, domain.PartialPrefix) {
		p = domain.JoinSourcePath(sourceDir, path.Dir(target), domain.PartialPrefix+file)
		if r.provider.Exists(p) {
			return r.found(p, domain.StrategyPartial), nil
		}
	}

	return domain.ResolvedFile{}, notFound(sourceDir, target)
}

func (r *Resolver) locateExact(sourceDir, target string) (domain.ResolvedFile, error) {
	p := domain.JoinSourcePath(sourceDir, target)
	if !r.provider.Exists(p) {
		return domain.ResolvedFile{}, notFound(sourceDir, target)
	}
	return r.found(p, domain.StrategyPrimary), nil
}

func (r *Resolver) resolveStylus(sourceDir, target string) ([]domain.ResolvedFile, error) {
	ext := domain.Stylus{}.Extension()

	switch {
	case strings.HasSuffix(target, ext):
		f, err := r.locateExact(sourceDir, target)
		if err != nil {
			return nil, err
		}
		return []domain.ResolvedFile{f}, nil

	case strings.HasSuffix(target, stylusGlob):
		return r.expandGlob(sourceDir, target)

	default:
		dir := domain.JoinSourcePath(sourceDir, target)
		if r.provider.IsDir(dir) {
			f, err := r.locateExact(dir.String(), stylusIndex)
			if err != nil {
				return nil, err
			}
			f.Strategy = domain.StrategyIndex
			return []domain.ResolvedFile{f}, nil
		}
		f, err := r.locateExact(sourceDir, target+ext)
		if err != nil {
			return nil, err
		}
		return []domain.ResolvedFile{f}, nil
	}
}

func (r *Resolver) expandGlob(sourceDir, target string) ([]domain.ResolvedFile, error) {
	dir := domain.JoinSourcePath(sourceDir, strings.TrimSuffix(target, stylusGlob))
	if !r.provider.Exists(dir) {
		return nil, zerr.With(domain.ErrImportDirNotFound, "import", target)
	}
	if !r.provider.IsDir(dir) {
		return nil, zerr.With(domain.ErrNotADirectory, "import", target)
	}

	names, err := r.provider.List(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list imported directory"), "import", target)
	}
	slices.Sort(names)

	var files []domain.ResolvedFile
	for _, name := range names {
		if !strings.HasSuffix(name, domain.Stylus{}.Extension()) {
			continue
		}
		f, err := r.locateExact(dir.String(), name)
		if err != nil {
			return nil, err
		}
		f.Strategy = domain.StrategyGlob
		files = append(files, f)
	}
	return files, nil
}

func (r *Resolver) found(p domain.SourcePath, s domain.Strategy) domain.ResolvedFile {
	full, _ := r.provider.FullPath(p)
	return domain.ResolvedFile{Path: p, FullPath: full, Strategy: s}
}

func notFound(sourceDir, target string) error {
	return zerr.With(zerr.With(domain.ErrImportNotFound, "import", target), "dir", sourceDir)
}
