// Package app implements the application layer for precomp.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/precomp/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/builder"
	"go.trai.ch/zerr"
)

// Options carries the command line settings.
type Options struct {
	// ConfigPath names the configuration file. Empty means precomp.yaml.
	ConfigPath string
	// JSONLogs forces JSON log output.
	JSONLogs bool
	// IgnoreDependencies turns dependency tracking off for the run and keeps
	// the durable store closed.
	IgnoreDependencies bool
	// DeleteStaleFiles removes files under the output directory that no
	// scanned source produced.
	DeleteStaleFiles bool
	// NoInitialScan makes Watch start without scanning first.
	NoInitialScan bool
}

// DepsMode selects where a dependency listing comes from.
type DepsMode int

const (
	// DepsDirect lists the imports parsed from the source.
	DepsDirect DepsMode = iota
	// DepsTransitive lists the full closure parsed from the sources.
	DepsTransitive
	// DepsStored lists the edges recorded by the last compile, pruned of
	// paths that no longer exist.
	DepsStored
)

// Dependency is one row of a dependency listing.
type Dependency struct {
	Source     domain.SourcePath `json:"source"`
	Dependency domain.SourcePath `json:"dependency"`
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	compiler     ports.Compiler
	tracer       ports.Tracer
	hasher       ports.Hasher
	stater       ports.Stater
	walker       ports.SourceWalker
	watcher      ports.Watcher
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	compiler ports.Compiler,
	tracer ports.Tracer,
	hasher ports.Hasher,
	stater ports.Stater,
	walker ports.SourceWalker,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		compiler:     compiler,
		tracer:       tracer,
		hasher:       hasher,
		stater:       stater,
		walker:       walker,
		watcher:      w,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce watch events.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// Compile compiles the named files when their outputs are stale. Explicit
// requests bypass the auto-compile gate.
func (a *App) Compile(ctx context.Context, files []string, opts Options) (err error) {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, s) }()

	var failed []error
	for _, f := range files {
		outcome, cerr := s.builder.CompileIfNeeded(ctx, s.sourcePath(f), builder.Options{Forced: true})
		if cerr != nil {
			failed = append(failed, cerr)
			continue
		}
		a.report(outcome)
	}
	if len(failed) == 1 {
		return failed[0]
	}
	if len(failed) > 1 {
		return zerr.With(zerr.Wrap(errors.Join(failed...), "compilation failed for several files"), "failed", len(failed))
	}
	return nil
}

// Scan compiles every stale non-partial source under the root.
func (a *App) Scan(ctx context.Context, opts Options) (err error) {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, s) }()

	return a.scan(ctx, s, opts)
}

func (a *App) scan(ctx context.Context, s *session, opts Options) error {
	outcomes, err := s.builder.Scan(ctx)
	compiled := 0
	for _, o := range outcomes {
		if o.Compiled {
			compiled++
		}
	}
	a.logger.Info(fmt.Sprintf("Scanned %d files, compiled %d", len(outcomes), compiled))

	if opts.DeleteStaleFiles && ctx.Err() == nil {
		if derr := a.deleteStale(s, outcomes); derr != nil {
			return errors.Join(err, derr)
		}
	}
	return err
}

// deleteStale removes every file under the output directory that is not the
// output of a scanned source. Outputs of sources that failed to compile are
// removed too.
func (a *App) deleteStale(s *session, outcomes []builder.Outcome) error {
	keep := make(map[string]bool, len(outcomes))
	for _, o := range outcomes {
		if o.Failed || o.Skipped == builder.SkipPartial {
			continue
		}
		if full, err := filepath.Abs(s.cfg.FullOutputPath(o.Source)); err == nil {
			keep[full] = true
		}
	}

	outputDir := filepath.Join(s.root, filepath.FromSlash(s.cfg.OutputDir))
	var errs []error
	for full := range a.walker.WalkFiles(outputDir, nil) {
		abs, err := filepath.Abs(full)
		if err != nil || keep[abs] {
			continue
		}
		if err := os.Remove(abs); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to delete stale file"), "path", abs))
			continue
		}
		rel, err := filepath.Rel(s.root, abs)
		if err != nil {
			rel = abs
		}
		a.logger.Info(fmt.Sprintf("Deleted stale file '%s'", filepath.ToSlash(rel)))
	}
	return errors.Join(errs...)
}

// Watch scans once, unless NoInitialScan is set, and then recompiles changed
// sources and their dependents until ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts Options) (err error) {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, s) }()

	if !opts.NoInitialScan {
		// Per-file failures were logged by the scan; keep watching.
		_ = a.scan(ctx, s, opts)
	}

	if err := a.watcher.Start(ctx, s.root, s.cfg.ExcludedDirs()); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() { _ = a.watcher.Stop() }()
	stop := context.AfterFunc(ctx, func() { _ = a.watcher.Stop() })
	defer stop()

	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		for _, p := range paths {
			// Failures are logged by the builder.
			_, _ = s.builder.HandleChanged(ctx, s.sourcePath(p))
		}
	})

	a.logger.Info("Watching " + s.root)
	for event := range a.watcher.Events() {
		if event.TriggersCompile() {
			debouncer.Add(event.Path)
		}
	}
	debouncer.Flush()
	debouncer.Wait()
	return nil
}

// Deps lists what file depends on, according to mode.
func (a *App) Deps(ctx context.Context, file string, mode DepsMode, opts Options) (_ []Dependency, err error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	defer func() { err = joinClose(err, s) }()

	source := s.sourcePath(file)
	if mode == DepsStored {
		found, err := s.tracker.GetDependencies(ctx, source)
		if err != nil {
			return nil, err
		}
		return rows(source, found, false), nil
	}

	d, err := domain.DialectFor(source, s.cfg.Dialects)
	if err != nil {
		return nil, err
	}

	var found []domain.SourcePath
	if mode == DepsTransitive {
		found, err = s.closure.FindDependencies(d, source)
	} else {
		found, err = s.closure.Direct(d, source)
	}
	if err != nil {
		return nil, err
	}
	return rows(source, found, false), nil
}

// Dependents lists the stored sources that depend on file.
func (a *App) Dependents(ctx context.Context, file string, opts Options) (_ []Dependency, err error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	defer func() { err = joinClose(err, s) }()

	dep := s.sourcePath(file)
	found, err := s.tracker.GetDependents(ctx, dep)
	if err != nil {
		return nil, err
	}
	return rows(dep, found, true), nil
}

func (a *App) report(o builder.Outcome) {
	switch o.Skipped {
	case builder.SkipUpToDate:
		a.logger.Info(fmt.Sprintf("'%s' is up to date", o.Source))
	case builder.SkipNoCompiler:
		a.logger.Info(fmt.Sprintf("No compiler configured for '%s', dependencies recorded", o.Source))
	}
}

func rows(subject domain.SourcePath, found []domain.SourcePath, reverse bool) []Dependency {
	out := make([]Dependency, 0, len(found))
	for _, f := range found {
		if reverse {
			out = append(out, Dependency{Source: f, Dependency: subject})
		} else {
			out = append(out, Dependency{Source: subject, Dependency: f})
		}
	}
	return out
}

func joinClose(err error, s *session) error {
	if cerr := s.close(); cerr != nil && err == nil {
		return zerr.Wrap(cerr, "failed to release state")
	}
	return err
}
