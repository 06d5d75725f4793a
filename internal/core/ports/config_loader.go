package ports

import "go.trai.ch/precomp/internal/core/domain"

// ConfigLoader loads the engine configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields defaults.
	Load(path string) (*domain.Config, error)
}
