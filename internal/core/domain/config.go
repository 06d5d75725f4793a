package domain

import (
	"path/filepath"
	"slices"
	"time"
)

// StalenessStrategy selects how the oracle compares outputs with inputs.
type StalenessStrategy string

const (
	// StalenessMtime compares modification times.
	StalenessMtime StalenessStrategy = "mtime"
	// StalenessHash compares content fingerprints.
	StalenessHash StalenessStrategy = "hash"
)

// Store drivers.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Defaults.
const (
	DefaultOutputDir       = "COMPILED"
	DefaultStateDir        = ".precomp"
	DefaultMtimeTTL        = 10 * time.Second
	DefaultStorePath       = DefaultStateDir + "/deps.db"
	DefaultFingerprintPath = DefaultStateDir + "/fingerprints.json"
	ConfigFileName         = "precomp.yaml"

	// DirPerm is the permission for directories created by the engine.
	DirPerm = 0o750
	// FilePerm is the permission for state files written by the engine.
	FilePerm = 0o644
)

// Config is the resolved configuration handed to the engine at startup.
type Config struct {
	Root               string
	AuxRoots           []string
	OutputDir          string
	AutoCompile        bool
	DependencyTracking bool
	Staleness          StalenessStrategy
	MtimeTTL           time.Duration
	Workers            int
	Store              StoreConfig
	FingerprintPath    string
	Log                LogConfig
	Dialects           []Dialect
	// Commands maps a dialect to its external compiler argv template.
	Commands map[DialectName][]string
}

// StoreConfig selects the durable dependency store.
type StoreConfig struct {
	Driver string
	Path   string
}

// LogConfig configures the logger sinks.
type LogConfig struct {
	JSON       bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Root:               ".",
		OutputDir:          DefaultOutputDir,
		AutoCompile:        true,
		DependencyTracking: true,
		Staleness:          StalenessMtime,
		MtimeTTL:           DefaultMtimeTTL,
		Store: StoreConfig{
			Driver: StoreDriverSQLite,
			Path:   DefaultStorePath,
		},
		FingerprintPath: DefaultFingerprintPath,
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Dialects: []Dialect{SCSS{}, SASS{}, LESS{}, Stylus{}},
		Commands: map[DialectName][]string{},
	}
}

// OutputPath returns the relative path of the compiled output for source.
func (c *Config) OutputPath(source SourcePath) SourcePath {
	name := source.WithExt(".css").Base()
	return JoinSourcePath(c.OutputDir, source.Dir(), name)
}

// FullOutputPath returns the filesystem location of the compiled output for source.
func (c *Config) FullOutputPath(source SourcePath) string {
	return filepath.Join(c.Root, filepath.FromSlash(c.OutputPath(source).String()))
}

// StatePath resolves a state file path against the root unless it is absolute.
func (c *Config) StatePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// ExcludedDirs returns the absolute locations of the output directory and
// the state directories. Scans and watches do not descend into them. The
// root itself is never listed.
func (c *Config) ExcludedDirs() []string {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		root = filepath.Clean(c.Root)
	}

	candidates := []string{
		filepath.Join(c.Root, filepath.FromSlash(c.OutputDir)),
		filepath.Dir(c.StatePath(c.Store.Path)),
		filepath.Dir(c.StatePath(c.FingerprintPath)),
	}

	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		abs, err := filepath.Abs(dir)
		if err != nil || abs == root || slices.Contains(dirs, abs) {
			continue
		}
		dirs = append(dirs, abs)
	}
	return dirs
}
