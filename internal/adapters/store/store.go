package store

import (
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Open returns the DependencyStore selected by cfg.
func Open(cfg *domain.Config) (ports.DependencyStore, error) {
	switch cfg.Store.Driver {
	case domain.StoreDriverSQLite, "":
		return OpenSQLite(cfg.StatePath(cfg.Store.Path))
	case domain.StoreDriverMemory:
		return NewMemory(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStoreDriver, "driver", cfg.Store.Driver)
	}
}
