package builder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/fs"
	"go.trai.ch/precomp/internal/adapters/mtime"
	"go.trai.ch/precomp/internal/adapters/store"
	"go.trai.ch/precomp/internal/adapters/telemetry"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.trai.ch/precomp/internal/engine/builder"
	"go.trai.ch/precomp/internal/engine/deps"
	"go.trai.ch/precomp/internal/engine/resolver"
	"go.trai.ch/precomp/internal/engine/staleness"
	"go.trai.ch/precomp/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root     string
	cfg      *domain.Config
	store    *store.Memory
	tracker  *tracker.Tracker
	compiler *mocks.MockCompiler
	logger   *mocks.MockLogger
	builder  *builder.Builder
}

func newFixture(t *testing.T, files map[string]string, edit func(*domain.Config)) *fixture {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		write(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}

	cfg := domain.DefaultConfig()
	cfg.Root = root
	cfg.MtimeTTL = 0
	cfg.Workers = 2
	cfg.Commands = map[domain.DialectName][]string{
		domain.DialectSCSS:   {"sassc", "{source}", "{output}"},
		domain.DialectLESS:   {"lessc", "{source}", "{output}"},
		domain.DialectStylus: {"stylus", "{source}", "{output}"},
	}
	if edit != nil {
		edit(cfg)
	}

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	provider := fs.NewConfigProvider(cfg)
	mem := store.NewMemory()
	trk := tracker.New(mem, provider)
	cache := mtime.New(fs.Stater{}, cfg.MtimeTTL)
	oracle := staleness.New(staleness.Options{
		AutoCompile:        cfg.AutoCompile,
		DependencyTracking: cfg.DependencyTracking,
		Strategy:           cfg.Staleness,
		OutputFor:          cfg.FullOutputPath,
	}, provider, trk, cache, fs.NewHasher(), nil)

	b := builder.New(
		cfg,
		provider,
		fs.NewWalker(),
		deps.New(provider, resolver.New(provider)),
		trk,
		oracle,
		cache,
		compiler,
		logger,
		telemetry.NewNoOpTracer(),
	)

	return &fixture{
		root:     root,
		cfg:      cfg,
		store:    mem,
		tracker:  trk,
		compiler: compiler,
		logger:   logger,
		builder:  b,
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func touch(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

// expectCompiles makes the compiler write a CSS file for every request.
func (f *fixture) expectCompiles(t *testing.T, times int) *[]domain.SourcePath {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []domain.SourcePath
	)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CompileRequest) error {
			mu.Lock()
			seen = append(seen, req.Source)
			mu.Unlock()
			write(t, req.OutputFile, "/* css */")
			return nil
		}).Times(times)
	return &seen
}

func TestCompileIfNeeded_CompilesAndRecordsClosure(t *testing.T) {
	f := newFixture(t, map[string]string{
		"styles/main.scss":    `@import "vars", "mixins";`,
		"styles/_vars.scss":   `@import "colors";`,
		"styles/_colors.scss": "",
		"styles/mixins.scss":  "",
	}, nil)

	f.expectCompiles(t, 1)
	f.logger.EXPECT().Info("Compiled 'styles/main.scss' to 'COMPILED/styles/main.css'")

	outcome, err := f.builder.CompileIfNeeded(context.Background(), "styles/main.scss", builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, builder.Outcome{
		Source:   "styles/main.scss",
		Output:   "COMPILED/styles/main.css",
		Compiled: true,
	}, outcome)

	got, err := f.store.DependenciesOf(context.Background(), "styles/main.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{
		"styles/_colors.scss",
		"styles/_vars.scss",
		"styles/mixins.scss",
	}, got)
}

func TestCompileIfNeeded_UpToDate(t *testing.T) {
	f := newFixture(t, map[string]string{"a.less": `@import "b";`, "b.less": ""}, nil)
	ctx := context.Background()

	f.expectCompiles(t, 1)
	f.logger.EXPECT().Info(gomock.Any())

	_, err := f.builder.CompileIfNeeded(ctx, "a.less", builder.Options{})
	require.NoError(t, err)

	old := time.Now().Add(-time.Hour)
	touch(t, filepath.Join(f.root, "a.less"), old)
	touch(t, filepath.Join(f.root, "b.less"), old)

	outcome, err := f.builder.CompileIfNeeded(ctx, "a.less", builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, builder.SkipUpToDate, outcome.Skipped)
	assert.False(t, outcome.Compiled)
}

func TestCompileIfNeeded_DependencyNewerRecompiles(t *testing.T) {
	f := newFixture(t, map[string]string{"a.less": `@import "b";`, "b.less": ""}, nil)
	ctx := context.Background()

	f.expectCompiles(t, 2)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	_, err := f.builder.CompileIfNeeded(ctx, "a.less", builder.Options{})
	require.NoError(t, err)

	output := f.cfg.FullOutputPath("a.less")
	touch(t, filepath.Join(f.root, "a.less"), time.Now().Add(-2*time.Hour))
	touch(t, output, time.Now().Add(-time.Hour))
	touch(t, filepath.Join(f.root, "b.less"), time.Now())

	outcome, err := f.builder.CompileIfNeeded(ctx, "a.less", builder.Options{})
	require.NoError(t, err)
	assert.True(t, outcome.Compiled)
}

func TestCompileIfNeeded_AutoCompileGate(t *testing.T) {
	f := newFixture(t, map[string]string{"a.styl": ""}, func(c *domain.Config) {
		c.AutoCompile = false
	})
	ctx := context.Background()

	outcome, err := f.builder.CompileIfNeeded(ctx, "a.styl", builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, builder.SkipAutoCompileOff, outcome.Skipped)

	f.expectCompiles(t, 1)
	f.logger.EXPECT().Info(gomock.Any())

	outcome, err = f.builder.CompileIfNeeded(ctx, "a.styl", builder.Options{Forced: true})
	require.NoError(t, err)
	assert.True(t, outcome.Compiled)
}

func TestCompileIfNeeded_NoCompilerStillTracks(t *testing.T) {
	f := newFixture(t, map[string]string{"a.sass": "@import b\n", "_b.sass": ""}, nil)

	outcome, err := f.builder.CompileIfNeeded(context.Background(), "a.sass", builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, builder.SkipNoCompiler, outcome.Skipped)

	got, err := f.tracker.GetDependencies(context.Background(), "a.sass")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"_b.sass"}, got)
}

func TestCompileIfNeeded_Errors(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		f := newFixture(t, map[string]string{"a.txt": ""}, nil)
		_, err := f.builder.CompileIfNeeded(context.Background(), "a.txt", builder.Options{})
		require.ErrorContains(t, err, domain.ErrUnsupportedSource.Error())
	})

	t.Run("unresolvable import", func(t *testing.T) {
		f := newFixture(t, map[string]string{"a.scss": `@import "missing";`}, nil)
		f.expectCompiles(t, 1)

		_, err := f.builder.CompileIfNeeded(context.Background(), "a.scss", builder.Options{})
		require.ErrorContains(t, err, domain.ErrImportNotFound.Error())
	})

	t.Run("compiler failure", func(t *testing.T) {
		f := newFixture(t, map[string]string{"a.scss": ""}, nil)
		errBoom := errors.New("boom")
		f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(errBoom)

		_, err := f.builder.CompileIfNeeded(context.Background(), "a.scss", builder.Options{})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestCompileIfNeeded_PassesRequest(t *testing.T) {
	f := newFixture(t, map[string]string{"css/site.scss": ""}, nil)

	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CompileRequest) error {
			assert.Equal(t, []string{"sassc", "{source}", "{output}"}, req.Command)
			assert.Equal(t, domain.DialectSCSS, req.Dialect.Name())
			assert.Equal(t, filepath.Join(f.root, "css", "site.scss"), req.SourceFile)
			assert.Equal(t, filepath.Join(f.root, "COMPILED", "css", "site.css"), req.OutputFile)
			return nil
		})
	f.logger.EXPECT().Info(gomock.Any())

	_, err := f.builder.CompileIfNeeded(context.Background(), "css/site.scss", builder.Options{})
	require.NoError(t, err)
}
