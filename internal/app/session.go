package app

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/precomp/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/precomp/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/precomp/internal/adapters/mtime"       //nolint:depguard // Wired in app layer
	"go.trai.ch/precomp/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/builder"
	"go.trai.ch/precomp/internal/engine/deps"
	"go.trai.ch/precomp/internal/engine/resolver"
	"go.trai.ch/precomp/internal/engine/staleness"
	"go.trai.ch/precomp/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// logConfigurer is implemented by loggers that accept the log section of the
// configuration.
type logConfigurer interface {
	Configure(cfg domain.LogConfig) io.Closer
}

// session holds the engine assembled for one invocation.
type session struct {
	cfg      *domain.Config
	root     string
	provider *fs.Provider
	store    ports.DependencyStore
	closure  *deps.Builder
	tracker  *tracker.Tracker
	builder  *builder.Builder
	closers  []io.Closer
}

func (a *App) open(opts Options) (*session, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	// Command line overrides apply to this session only.
	resolved := *cfg
	cfg = &resolved
	if opts.JSONLogs {
		cfg.Log.JSON = true
	}
	if opts.IgnoreDependencies {
		cfg.DependencyTracking = false
		cfg.Store.Driver = domain.StoreDriverMemory
	}

	s := &session{cfg: cfg}
	if lc, ok := a.logger.(logConfigurer); ok {
		s.closers = append(s.closers, lc.Configure(cfg.Log))
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		_ = s.close()
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", cfg.Root)
	}
	s.root = root

	s.store, err = store.Open(cfg)
	if err != nil {
		_ = s.close()
		return nil, err
	}
	s.closers = append(s.closers, s.store)

	var fingerprints ports.FingerprintStore
	if cfg.Staleness == domain.StalenessHash {
		fingerprints, err = fingerprint.NewStore(cfg.StatePath(cfg.FingerprintPath))
		if err != nil {
			_ = s.close()
			return nil, err
		}
	}

	s.provider = fs.NewConfigProvider(cfg)
	mtimes := mtime.New(a.stater, cfg.MtimeTTL)
	s.closure = deps.New(s.provider, resolver.New(s.provider))
	s.tracker = tracker.New(s.store, s.provider)

	oracle := staleness.New(staleness.Options{
		AutoCompile:        cfg.AutoCompile,
		DependencyTracking: cfg.DependencyTracking,
		Strategy:           cfg.Staleness,
		OutputFor:          cfg.FullOutputPath,
	}, s.provider, s.tracker, mtimes, a.hasher, fingerprints)

	s.builder = builder.New(
		cfg, s.provider, a.walker, s.closure, s.tracker, oracle,
		mtimes, a.compiler, a.logger, a.tracer,
	)
	return s, nil
}

// close releases the store first and the log sink last.
func (s *session) close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// sourcePath maps a command line or watcher path onto the primary root.
// Paths outside the root are taken as root relative.
func (s *session) sourcePath(p string) domain.SourcePath {
	abs, err := filepath.Abs(p)
	if err != nil {
		return domain.NewSourcePath(p)
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.NewSourcePath(p)
	}
	return domain.NewSourcePath(filepath.ToSlash(rel))
}
