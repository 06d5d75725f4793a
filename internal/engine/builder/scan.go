package builder

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Sources lists every supported source below the primary root, skipping
// the output and state directories.
func (b *Builder) Sources() []domain.SourcePath {
	root := b.provider.Root()

	var sources []domain.SourcePath
	for full := range b.walker.WalkFiles(root, b.cfg.ExcludedDirs()) {
		rel, err := filepath.Rel(root, full)
		if err != nil {
			continue
		}
		source := domain.NewSourcePath(filepath.ToSlash(rel))
		if _, err := domain.DialectFor(source, b.cfg.Dialects); err != nil {
			continue
		}
		sources = append(sources, source)
	}
	return sources
}

// Scan runs a forced compile-if-needed over every source. Failures are
// logged and collected; the remaining sources are still processed.
func (b *Builder) Scan(ctx context.Context) ([]Outcome, error) {
	sources := b.Sources()

	ctx, span := b.tracer.Start(ctx, "precomp.scan", ports.WithAttribute("files", len(sources)))
	defer span.End()

	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.String()
	}
	b.tracer.EmitPlan(ctx, names)

	outcomes := make([]Outcome, len(sources))
	var (
		mu   sync.Mutex
		errs []error
	)

	var g errgroup.Group
	g.SetLimit(b.workers())

	for i, source := range sources {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			outcome, err := b.CompileIfNeeded(ctx, source, Options{Forced: true, FromScan: true})
			outcome.Failed = err != nil
			outcomes[i] = outcome
			if err != nil {
				b.logger.Error(err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return outcomes, err
	}
	if len(errs) > 0 {
		err := errors.Join(append([]error{domain.ErrScanFailed}, errs...)...)
		span.RecordError(err)
		return outcomes, err
	}
	return outcomes, nil
}

func (b *Builder) workers() int {
	if b.cfg.Workers > 0 {
		return b.cfg.Workers
	}
	return runtime.NumCPU()
}
