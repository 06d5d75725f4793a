package builder

import (
	"context"
	"errors"

	"go.trai.ch/precomp/internal/core/domain"
)

// HandleChanged reacts to a created or modified file. The file itself is
// compiled if it is a compilable source, then every stored dependent is
// revisited, recursively. These requests are forced, so they run even with
// auto-compile disabled; the oracle still skips fresh outputs. Each path is
// handled once per call. Failures are logged as they happen and returned
// joined.
func (b *Builder) HandleChanged(ctx context.Context, changed domain.SourcePath) ([]Outcome, error) {
	var (
		outcomes []Outcome
		errs     []error
	)

	visited := map[domain.SourcePath]struct{}{changed: {}}
	queue := []domain.SourcePath{changed}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return outcomes, errors.Join(append(errs, err)...)
		}

		path := queue[0]
		queue = queue[1:]

		if full, err := b.provider.FullPath(path); err == nil {
			b.mtimes.Invalidate(full)
		}

		if b.compilable(path) {
			outcome, err := b.CompileIfNeeded(ctx, path, Options{Forced: true})
			if err != nil {
				b.logger.Error(err)
				errs = append(errs, err)
			} else {
				outcomes = append(outcomes, outcome)
			}
		}

		dependents, err := b.tracker.GetDependents(ctx, path)
		if err != nil {
			b.logger.Error(err)
			errs = append(errs, err)
			continue
		}
		for _, dep := range dependents {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			queue = append(queue, dep)
		}
	}

	return outcomes, errors.Join(errs...)
}

func (b *Builder) compilable(path domain.SourcePath) bool {
	if !b.provider.Exists(path) {
		return false
	}
	d, err := domain.DialectFor(path, b.cfg.Dialects)
	if err != nil {
		return false
	}
	return !d.SkipsPartials() || !path.IsPartial()
}
