package config

// File is the on-disk shape of precomp.yaml.
type File struct {
	Root               string                `yaml:"root"`
	AuxRoots           []string              `yaml:"auxRoots"`
	OutputDir          string                `yaml:"outputDir"`
	AutoCompile        *bool                 `yaml:"autoCompile"`
	DependencyTracking *bool                 `yaml:"dependencyTracking"`
	Staleness          string                `yaml:"staleness"`
	MtimeTTL           string                `yaml:"mtimeTTL"`
	Workers            int                   `yaml:"workers"`
	Store              StoreDTO              `yaml:"store"`
	Fingerprints       string                `yaml:"fingerprints"`
	Log                LogDTO                `yaml:"log"`
	Dialects           map[string]DialectDTO `yaml:"dialects"`
}

// StoreDTO configures the dependency store.
type StoreDTO struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LogDTO configures logging sinks.
type LogDTO struct {
	JSON       bool   `yaml:"json"`
	File       string `yaml:"file"`
	MaxSizeMB  *int   `yaml:"maxSizeMB"`
	MaxBackups *int   `yaml:"maxBackups"`
	MaxAgeDays *int   `yaml:"maxAgeDays"`
}

// DialectDTO configures one dialect.
type DialectDTO struct {
	Enabled   *bool    `yaml:"enabled"`
	LoadPaths []string `yaml:"loadPaths"`
	Compass   bool     `yaml:"compass"`
	Command   []string `yaml:"command"`
}
