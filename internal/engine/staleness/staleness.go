// Package staleness decides whether a source must be recompiled.
package staleness

import (
	"context"
	"time"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Check carries the inputs of one staleness decision.
type Check struct {
	AutoCompile        bool
	Forced             bool
	HasOutput          bool
	OutputMtime        time.Time
	SourceMtime        time.Time
	DependencyTracking bool
}

// ShouldCompile applies the mtime decision table. depMtimes is only called
// when dependency tracking is enabled and the output is otherwise fresh.
func ShouldCompile(c Check, depMtimes func() ([]time.Time, error)) (bool, error) {
	if !c.AutoCompile && !c.Forced {
		return false, nil
	}
	if !c.HasOutput {
		return true, nil
	}
	// Equal mtimes count as stale.
	if !c.OutputMtime.After(c.SourceMtime) {
		return true, nil
	}
	if !c.DependencyTracking {
		return false, nil
	}

	mtimes, err := depMtimes()
	if err != nil {
		return false, err
	}
	for _, m := range mtimes {
		if !c.OutputMtime.After(m) {
			return true, nil
		}
	}
	return false, nil
}

// DependencyReader returns the stored dependencies of a source.
type DependencyReader interface {
	GetDependencies(ctx context.Context, source domain.SourcePath) ([]domain.SourcePath, error)
}

// Options configures an Oracle.
type Options struct {
	AutoCompile        bool
	DependencyTracking bool
	Strategy           domain.StalenessStrategy
	// OutputFor maps a source to the filesystem location of its output.
	OutputFor func(domain.SourcePath) string
}

// Oracle answers staleness questions against the filesystem and the store.
type Oracle struct {
	opts         Options
	provider     ports.SourceProvider
	deps         DependencyReader
	mtimes       ports.MtimeCache
	hasher       ports.Hasher
	fingerprints ports.FingerprintStore
}

// New creates an Oracle. hasher and fingerprints are only used by the hash
// strategy and may be nil otherwise.
func New(
	opts Options,
	provider ports.SourceProvider,
	deps DependencyReader,
	mtimes ports.MtimeCache,
	hasher ports.Hasher,
	fingerprints ports.FingerprintStore,
) *Oracle {
	return &Oracle{
		opts:         opts,
		provider:     provider,
		deps:         deps,
		mtimes:       mtimes,
		hasher:       hasher,
		fingerprints: fingerprints,
	}
}

// ShouldCompile reports whether source has to be compiled. forced marks an
// explicit request that bypasses the auto-compile gate.
func (o *Oracle) ShouldCompile(ctx context.Context, source domain.SourcePath, forced bool) (bool, error) {
	if !o.opts.AutoCompile && !forced {
		return false, nil
	}

	outputMtime, err := o.mtimes.Mtime(o.opts.OutputFor(source))
	hasOutput := err == nil

	if o.opts.Strategy == domain.StalenessHash {
		if !hasOutput {
			return true, nil
		}
		return o.hashChanged(ctx, source)
	}

	sourceFile, err := o.provider.FullPath(source)
	if err != nil {
		return false, err
	}
	sourceMtime, err := o.mtimes.Mtime(sourceFile)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", sourceFile)
	}

	return ShouldCompile(Check{
		AutoCompile:        o.opts.AutoCompile,
		Forced:             forced,
		HasOutput:          hasOutput,
		OutputMtime:        outputMtime,
		SourceMtime:        sourceMtime,
		DependencyTracking: o.opts.DependencyTracking,
	}, func() ([]time.Time, error) {
		return o.dependencyMtimes(ctx, source)
	})
}

// Record stores the fingerprint of source after a successful compile. It is a
// no-op for the mtime strategy.
func (o *Oracle) Record(ctx context.Context, source domain.SourcePath) error {
	if o.opts.Strategy != domain.StalenessHash {
		return nil
	}

	hash, err := o.inputHash(ctx, source)
	if err != nil {
		return err
	}
	return o.fingerprints.Put(domain.Fingerprint{
		Source:    source,
		Output:    o.opts.OutputFor(source),
		InputHash: hash,
		Timestamp: time.Now(),
	})
}

func (o *Oracle) dependencyMtimes(ctx context.Context, source domain.SourcePath) ([]time.Time, error) {
	deps, err := o.deps.GetDependencies(ctx, source)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, len(deps))
	for _, dep := range deps {
		full, err := o.provider.FullPath(dep)
		if err != nil {
			return nil, err
		}
		m, err := o.mtimes.Mtime(full)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat dependency"), "path", full)
		}
		out = append(out, m)
	}
	return out, nil
}

func (o *Oracle) hashChanged(ctx context.Context, source domain.SourcePath) (bool, error) {
	recorded, err := o.fingerprints.Get(source)
	if err != nil {
		return false, err
	}
	if recorded == nil {
		return true, nil
	}

	current, err := o.inputHash(ctx, source)
	if err != nil {
		return false, err
	}
	return current != recorded.InputHash, nil
}

// inputHash covers the source and, with dependency tracking, its stored
// dependencies in sorted order.
func (o *Oracle) inputHash(ctx context.Context, source domain.SourcePath) (string, error) {
	sourceFile, err := o.provider.FullPath(source)
	if err != nil {
		return "", err
	}
	files := []string{sourceFile}

	if o.opts.DependencyTracking {
		deps, err := o.deps.GetDependencies(ctx, source)
		if err != nil {
			return "", err
		}
		for _, dep := range deps {
			full, err := o.provider.FullPath(dep)
			if err != nil {
				return "", err
			}
			files = append(files, full)
		}
	}

	return o.hasher.ComputeInputHash(files)
}
