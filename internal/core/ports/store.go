package ports

import (
	"context"

	"go.trai.ch/precomp/internal/core/domain"
)

// DependencyStore is the durable mapping from a source path to its
// stored dependencies. It holds one edge per (source, dependency) pair.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DependencyStore interface {
	// DependenciesOf returns the stored dependencies of source, sorted.
	DependenciesOf(ctx context.Context, source domain.SourcePath) ([]domain.SourcePath, error)
	// DependentsOf returns the sources with an edge to dep, sorted.
	DependentsOf(ctx context.Context, dep domain.SourcePath) ([]domain.SourcePath, error)
	// Replace sets the edge set of source to exactly deps in one transaction.
	Replace(ctx context.Context, source domain.SourcePath, deps []domain.SourcePath) error
	// Delete removes the given edges.
	Delete(ctx context.Context, edges ...domain.DependencyEdge) error
	// Close releases the store.
	Close() error
}

// FingerprintStore persists content fingerprints of compiled sources.
type FingerprintStore interface {
	// Get returns the fingerprint for source, or nil if none is recorded.
	Get(source domain.SourcePath) (*domain.Fingerprint, error)
	// Put records a fingerprint.
	Put(fp domain.Fingerprint) error
}
