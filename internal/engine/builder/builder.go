// Package builder drives compile-if-needed over single files, bulk scans
// and change notifications.
package builder

import (
	"context"
	"fmt"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/deps"
	"go.trai.ch/precomp/internal/engine/staleness"
	"go.trai.ch/precomp/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// SkipReason explains why a source was not compiled.
type SkipReason string

const (
	// SkipNone means the source was compiled.
	SkipNone SkipReason = ""
	// SkipPartial means a bulk scan reached a partial.
	SkipPartial SkipReason = "partial"
	// SkipUpToDate means the oracle found the output fresh.
	SkipUpToDate SkipReason = "up-to-date"
	// SkipAutoCompileOff means auto-compile is disabled and the request was
	// not forced.
	SkipAutoCompileOff SkipReason = "auto-compile-off"
	// SkipNoCompiler means no compiler command is configured for the
	// dialect. Dependencies are still recorded.
	SkipNoCompiler SkipReason = "no-compiler"
)

// Options qualifies one compile-if-needed request.
type Options struct {
	// Forced bypasses the auto-compile gate. The oracle is still consulted.
	Forced bool
	// FromScan marks requests issued by a bulk scan, which skip partials.
	FromScan bool
}

// Outcome is the result of one compile-if-needed request.
type Outcome struct {
	Source   domain.SourcePath
	Output   domain.SourcePath
	Compiled bool
	Skipped  SkipReason
	// Failed is set by Scan for sources whose request returned an error.
	Failed bool
}

// Builder compiles sources whose outputs are stale and keeps their
// dependency edges current.
type Builder struct {
	cfg      *domain.Config
	provider ports.SourceProvider
	walker   ports.SourceWalker
	closure  *deps.Builder
	tracker  *tracker.Tracker
	oracle   *staleness.Oracle
	mtimes   ports.MtimeCache
	compiler ports.Compiler
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a Builder.
func New(
	cfg *domain.Config,
	provider ports.SourceProvider,
	walker ports.SourceWalker,
	closure *deps.Builder,
	t *tracker.Tracker,
	oracle *staleness.Oracle,
	mtimes ports.MtimeCache,
	compiler ports.Compiler,
	logger ports.Logger,
	tracer ports.Tracer,
) *Builder {
	return &Builder{
		cfg:      cfg,
		provider: provider,
		walker:   walker,
		closure:  closure,
		tracker:  t,
		oracle:   oracle,
		mtimes:   mtimes,
		compiler: compiler,
		logger:   logger,
		tracer:   tracer,
	}
}

// CompileIfNeeded compiles source when its output is stale.
func (b *Builder) CompileIfNeeded(ctx context.Context, source domain.SourcePath, opts Options) (Outcome, error) {
	ctx, span := b.tracer.Start(ctx, "precomp.compile", ports.WithAttribute("source", source.String()))
	defer span.End()

	outcome, err := b.compileIfNeeded(ctx, source, opts)
	span.SetAttribute("compiled", outcome.Compiled)
	if err != nil {
		span.RecordError(err)
	}
	return outcome, err
}

func (b *Builder) compileIfNeeded(ctx context.Context, source domain.SourcePath, opts Options) (Outcome, error) {
	outcome := Outcome{Source: source, Output: b.cfg.OutputPath(source)}

	d, err := domain.DialectFor(source, b.cfg.Dialects)
	if err != nil {
		return outcome, err
	}

	if opts.FromScan && d.SkipsPartials() && source.IsPartial() {
		outcome.Skipped = SkipPartial
		return outcome, nil
	}

	if !b.cfg.AutoCompile && !opts.Forced {
		outcome.Skipped = SkipAutoCompileOff
		return outcome, nil
	}

	stale, err := b.oracle.ShouldCompile(ctx, source, opts.Forced)
	if err != nil {
		return outcome, zerr.With(err, "source", source.String())
	}
	if !stale {
		outcome.Skipped = SkipUpToDate
		return outcome, nil
	}

	compiled, err := b.compile(ctx, d, source)
	if err != nil {
		return outcome, err
	}
	outcome.Compiled = compiled
	if !compiled {
		outcome.Skipped = SkipNoCompiler
	}
	return outcome, nil
}

// compile runs the external compiler, if any, and records the dependency
// closure of source. It reports whether a compiler ran.
func (b *Builder) compile(ctx context.Context, d domain.Dialect, source domain.SourcePath) (bool, error) {
	sourceFile, err := b.provider.FullPath(source)
	if err != nil {
		return false, err
	}
	outputFile := b.cfg.FullOutputPath(source)

	command := b.cfg.Commands[d.Name()]
	if len(command) > 0 {
		err := b.compiler.Compile(ctx, ports.CompileRequest{
			Command:    command,
			Dialect:    d,
			Source:     source,
			SourceFile: sourceFile,
			OutputFile: outputFile,
		})
		b.mtimes.Invalidate(outputFile)
		if err != nil {
			return false, err
		}
	}

	if b.cfg.DependencyTracking {
		closure, err := b.closure.FindDependencies(d, source)
		if err != nil {
			return false, err
		}
		if err := b.tracker.UpdateDependencies(ctx, source, closure); err != nil {
			return false, err
		}
	}

	if err := b.oracle.Record(ctx, source); err != nil {
		return false, err
	}

	if len(command) == 0 {
		return false, nil
	}

	b.logger.Info(fmt.Sprintf("Compiled '%s' to '%s'", source, b.cfg.OutputPath(source)))
	return true, nil
}
