// Package deps computes the import dependencies of stylesheet sources.
package deps

import (
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/imports"
	"go.trai.ch/precomp/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Builder walks import directives through the resolver.
type Builder struct {
	provider ports.SourceProvider
	resolver *resolver.Resolver
}

// New creates a Builder.
func New(provider ports.SourceProvider, r *resolver.Resolver) *Builder {
	return &Builder{
		provider: provider,
		resolver: r,
	}
}

// Direct returns the files source imports directly, sorted.
// A single unresolvable import fails the whole call.
func (b *Builder) Direct(d domain.Dialect, source domain.SourcePath) ([]domain.SourcePath, error) {
	files, err := b.direct(d, source)
	if err != nil {
		return nil, err
	}
	return domain.SortSourcePaths(files), nil
}

// FindDependencies returns the transitive closure of the imports of source,
// sorted. A file that is reached again while it is still being expanded is
// treated as already satisfied, so cyclic imports terminate.
func (b *Builder) FindDependencies(d domain.Dialect, source domain.SourcePath) ([]domain.SourcePath, error) {
	acc := make(map[domain.SourcePath]struct{})
	inProgress := map[domain.SourcePath]struct{}{source: {}}

	if err := b.closure(d, source, acc, inProgress); err != nil {
		return nil, err
	}
	return domain.SortSourcePaths(acc), nil
}

func (b *Builder) closure(
	d domain.Dialect,
	source domain.SourcePath,
	acc, inProgress map[domain.SourcePath]struct{},
) error {
	direct, err := b.direct(d, source)
	if err != nil {
		return err
	}

	for dep := range direct {
		acc[dep] = struct{}{}
	}

	for _, dep := range domain.SortSourcePaths(direct) {
		if _, ok := inProgress[dep]; ok {
			continue
		}
		inProgress[dep] = struct{}{}
		err := b.closure(d, dep, acc, inProgress)
		delete(inProgress, dep)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) direct(d domain.Dialect, source domain.SourcePath) (map[domain.SourcePath]struct{}, error) {
	text, err := b.provider.Read(source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source"), "source", source.String())
	}

	out := make(map[domain.SourcePath]struct{})
	for _, target := range imports.FindImports(d, text) {
		files, err := b.resolver.Resolve(d, source.Dir(), target)
		if err != nil {
			return nil, zerr.With(err, "source", source.String())
		}
		for _, f := range files {
			out[f.Path] = struct{}{}
		}
	}
	return out, nil
}
