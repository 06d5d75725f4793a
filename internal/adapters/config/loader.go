// Package config loads precomp.yaml into a domain.Config.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// dialectOrder fixes the order in which dialects are matched against sources.
var dialectOrder = []domain.DialectName{
	domain.DialectSCSS,
	domain.DialectSASS,
	domain.DialectLESS,
	domain.DialectStylus,
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path, or precomp.yaml in the working
// directory when path is empty. A missing file yields the defaults.
// Relative roots are resolved against the directory holding the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	var file File
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	cfg, err := Convert(&file, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if len(cfg.Dialects) == 0 {
		l.logger.Warn("no dialects are enabled, nothing will be compiled")
	}
	return cfg, nil
}

// Convert validates file and applies it over the defaults. Relative roots are
// resolved against base.
func Convert(file *File, base string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Root != "" {
		cfg.Root = file.Root
	}
	cfg.Root = resolve(base, cfg.Root)
	for _, root := range file.AuxRoots {
		cfg.AuxRoots = append(cfg.AuxRoots, resolve(cfg.Root, root))
	}

	if file.OutputDir != "" {
		cfg.OutputDir = filepath.ToSlash(filepath.Clean(file.OutputDir))
	}
	if filepath.IsAbs(cfg.OutputDir) || cfg.OutputDir == "." || escapes(cfg.OutputDir) {
		return nil, invalid("outputDir", file.OutputDir)
	}

	if file.AutoCompile != nil {
		cfg.AutoCompile = *file.AutoCompile
	}
	if file.DependencyTracking != nil {
		cfg.DependencyTracking = *file.DependencyTracking
	}

	switch s := domain.StalenessStrategy(file.Staleness); s {
	case "":
	case domain.StalenessMtime, domain.StalenessHash:
		cfg.Staleness = s
	default:
		return nil, invalid("staleness", file.Staleness)
	}

	if file.MtimeTTL != "" {
		ttl, err := time.ParseDuration(file.MtimeTTL)
		if err != nil || ttl < 0 {
			return nil, invalid("mtimeTTL", file.MtimeTTL)
		}
		cfg.MtimeTTL = ttl
	}

	if file.Workers < 0 {
		return nil, invalid("workers", file.Workers)
	}
	cfg.Workers = file.Workers

	switch file.Store.Driver {
	case "":
	case domain.StoreDriverSQLite, domain.StoreDriverMemory:
		cfg.Store.Driver = file.Store.Driver
	default:
		return nil, zerr.With(domain.ErrUnknownStoreDriver, "driver", file.Store.Driver)
	}
	if file.Store.Path != "" {
		cfg.Store.Path = file.Store.Path
	}
	if file.Fingerprints != "" {
		cfg.FingerprintPath = file.Fingerprints
	}

	if err := convertLog(&file.Log, cfg); err != nil {
		return nil, err
	}
	if err := convertDialects(file.Dialects, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func convertLog(dto *LogDTO, cfg *domain.Config) error {
	cfg.Log.JSON = dto.JSON
	if dto.File != "" {
		cfg.Log.File = cfg.StatePath(dto.File)
	}

	limits := []struct {
		key string
		src *int
		dst *int
	}{
		{"log.maxSizeMB", dto.MaxSizeMB, &cfg.Log.MaxSizeMB},
		{"log.maxBackups", dto.MaxBackups, &cfg.Log.MaxBackups},
		{"log.maxAgeDays", dto.MaxAgeDays, &cfg.Log.MaxAgeDays},
	}
	for _, v := range limits {
		if v.src == nil {
			continue
		}
		if *v.src < 0 {
			return invalid(v.key, *v.src)
		}
		*v.dst = *v.src
	}
	return nil
}

func convertDialects(dtos map[string]DialectDTO, cfg *domain.Config) error {
	for name := range dtos {
		if _, err := domain.NewDialect(domain.DialectName(name), nil, false); err != nil {
			return err
		}
	}

	cfg.Dialects = cfg.Dialects[:0]
	for _, name := range dialectOrder {
		dto := dtos[string(name)]
		if dto.Enabled != nil && !*dto.Enabled {
			continue
		}

		loadPaths := make([]string, 0, len(dto.LoadPaths))
		for _, p := range dto.LoadPaths {
			loadPaths = append(loadPaths, resolve(cfg.Root, p))
		}

		d, err := domain.NewDialect(name, loadPaths, dto.Compass)
		if err != nil {
			return err
		}
		cfg.Dialects = append(cfg.Dialects, d)

		if len(dto.Command) > 0 {
			cfg.Commands[name] = dto.Command
		}
	}
	return nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func escapes(p string) bool {
	return p == ".." || strings.HasPrefix(p, "../")
}

func invalid(key string, value any) error {
	return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", key), "value", value)
}
