// Package tracker keeps the recorded dependency edges of compiled sources.
// After a compile a source has one edge to every file in its import
// closure, not only to the files it imports directly.
package tracker

import (
	"context"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tracker reads and replaces stored edges. Reads prune edges whose other
// side can no longer be found through the SourceProvider.
type Tracker struct {
	store    ports.DependencyStore
	provider ports.SourceProvider
}

// New creates a Tracker.
func New(store ports.DependencyStore, provider ports.SourceProvider) *Tracker {
	return &Tracker{
		store:    store,
		provider: provider,
	}
}

// GetDependencies returns the stored dependencies of source, sorted.
// Dependencies that no longer resolve are deleted before returning.
func (t *Tracker) GetDependencies(ctx context.Context, source domain.SourcePath) ([]domain.SourcePath, error) {
	deps, err := t.store.DependenciesOf(ctx, source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "source", source.String())
	}

	return t.prune(ctx, deps, func(dep domain.SourcePath) domain.DependencyEdge {
		return domain.DependencyEdge{Source: source, DependsOn: dep}
	})
}

// GetDependents returns the sources with a recorded edge to source, sorted.
// Dependents that no longer resolve are deleted before returning.
func (t *Tracker) GetDependents(ctx context.Context, source domain.SourcePath) ([]domain.SourcePath, error) {
	dependents, err := t.store.DependentsOf(ctx, source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "source", source.String())
	}

	return t.prune(ctx, dependents, func(dependent domain.SourcePath) domain.DependencyEdge {
		return domain.DependencyEdge{Source: dependent, DependsOn: source}
	})
}

// UpdateDependencies replaces the edge set of source with exactly deps.
// An empty set removes every edge of source.
func (t *Tracker) UpdateDependencies(ctx context.Context, source domain.SourcePath, deps []domain.SourcePath) error {
	if err := checkLength(source); err != nil {
		return err
	}
	for _, dep := range deps {
		if err := checkLength(dep); err != nil {
			return err
		}
	}

	if err := t.store.Replace(ctx, source, domain.UniqueSorted(deps)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "source", source.String())
	}
	return nil
}

func (t *Tracker) prune(
	ctx context.Context,
	paths []domain.SourcePath,
	edge func(domain.SourcePath) domain.DependencyEdge,
) ([]domain.SourcePath, error) {
	kept := make([]domain.SourcePath, 0, len(paths))
	var stale []domain.DependencyEdge

	for _, p := range paths {
		if t.provider.Exists(p) {
			kept = append(kept, p)
			continue
		}
		stale = append(stale, edge(p))
	}

	if len(stale) > 0 {
		if err := t.store.Delete(ctx, stale...); err != nil {
			return nil, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
		}
	}

	return domain.UniqueSorted(kept), nil
}

func checkLength(p domain.SourcePath) error {
	if len(p) > domain.MaxStoredPathLength {
		return zerr.With(domain.ErrPathTooLong, "path", p.String())
	}
	return nil
}
