package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/config"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	cfg, err := loader.Load(filepath.Join(dir, domain.ConfigFileName))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, domain.DefaultOutputDir, cfg.OutputDir)
	assert.True(t, cfg.AutoCompile)
	assert.True(t, cfg.DependencyTracking)
	assert.Equal(t, domain.StalenessMtime, cfg.Staleness)
	assert.Equal(t, domain.DefaultMtimeTTL, cfg.MtimeTTL)
	assert.Equal(t, domain.StoreDriverSQLite, cfg.Store.Driver)
	assert.Len(t, cfg.Dialects, 4)
	assert.Empty(t, cfg.Commands)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
root: site
auxRoots: [vendor]
outputDir: build/css
autoCompile: false
dependencyTracking: true
staleness: hash
mtimeTTL: 250ms
workers: 3
store:
  driver: memory
fingerprints: state/fp.json
log:
  json: true
  file: logs/precomp.log
  maxSizeMB: 1
dialects:
  scss:
    loadPaths: [shared]
    compass: true
    command: [sassc, "{source}", "{output}"]
  stylus:
    enabled: false
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	base := filepath.Dir(path)
	root := filepath.Join(base, "site")
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, []string{filepath.Join(root, "vendor")}, cfg.AuxRoots)
	assert.Equal(t, "build/css", cfg.OutputDir)
	assert.False(t, cfg.AutoCompile)
	assert.Equal(t, domain.StalenessHash, cfg.Staleness)
	assert.Equal(t, 250*time.Millisecond, cfg.MtimeTTL)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, domain.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "state/fp.json", cfg.FingerprintPath)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, filepath.Join(root, "logs", "precomp.log"), cfg.Log.File)
	assert.Equal(t, 1, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)

	require.Len(t, cfg.Dialects, 3)
	assert.Equal(t, domain.SCSS{LoadPaths: []string{filepath.Join(root, "shared")}, Compass: true}, cfg.Dialects[0])
	assert.Equal(t, domain.SASS{LoadPaths: []string{}}, cfg.Dialects[1])
	assert.Equal(t, domain.LESS{}, cfg.Dialects[2])
	assert.Equal(t, []string{"sassc", "{source}", "{output}"}, cfg.Commands[domain.DialectSCSS])
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"staleness", "staleness: sometimes", domain.ErrInvalidConfig},
		{"ttl", "mtimeTTL: soon", domain.ErrInvalidConfig},
		{"negative ttl", "mtimeTTL: -1s", domain.ErrInvalidConfig},
		{"workers", "workers: -2", domain.ErrInvalidConfig},
		{"output escapes", "outputDir: ../out", domain.ErrInvalidConfig},
		{"log size", "log:\n  maxSizeMB: -1", domain.ErrInvalidConfig},
		{"dialect", "dialects:\n  coffee: {}", domain.ErrUnknownDialect},
		{"driver", "store:\n  driver: redis", domain.ErrUnknownStoreDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)

			_, err := loader.Load(writeConfig(t, tt.content))
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(writeConfig(t, "root: [unclosed"))
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_ReadError(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(t.TempDir())
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoad_AllDialectsDisabledWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := loader.Load(writeConfig(t, `
dialects:
  scss: {enabled: false}
  sass: {enabled: false}
  less: {enabled: false}
  stylus: {enabled: false}
`))
	require.NoError(t, err)
	assert.Empty(t, cfg.Dialects)
}
