package store

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
)

var _ ports.DependencyStore = (*Memory)(nil)

// Memory is a process-local DependencyStore. It is not durable and is meant
// for one-shot runs and tests.
type Memory struct {
	mu    sync.RWMutex
	edges map[domain.SourcePath]map[domain.SourcePath]struct{}
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		edges: make(map[domain.SourcePath]map[domain.SourcePath]struct{}),
	}
}

// DependenciesOf implements ports.DependencyStore.
func (m *Memory) DependenciesOf(_ context.Context, source domain.SourcePath) ([]domain.SourcePath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domain.SortSourcePaths(m.edges[source]), nil
}

// DependentsOf implements ports.DependencyStore.
func (m *Memory) DependentsOf(_ context.Context, dep domain.SourcePath) ([]domain.SourcePath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.SourcePath
	for source, deps := range m.edges {
		if _, ok := deps[dep]; ok {
			out = append(out, source)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Replace implements ports.DependencyStore.
func (m *Memory) Replace(_ context.Context, source domain.SourcePath, deps []domain.SourcePath) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(deps) == 0 {
		delete(m.edges, source)
		return nil
	}

	set := make(map[domain.SourcePath]struct{}, len(deps))
	for _, d := range deps {
		set[d] = struct{}{}
	}
	m.edges[source] = set
	return nil
}

// Delete implements ports.DependencyStore.
func (m *Memory) Delete(_ context.Context, edges ...domain.DependencyEdge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range edges {
		deps, ok := m.edges[e.Source]
		if !ok {
			continue
		}
		delete(deps, e.DependsOn)
		if len(deps) == 0 {
			delete(m.edges, e.Source)
		}
	}
	return nil
}

// Close implements ports.DependencyStore.
func (m *Memory) Close() error {
	return nil
}
