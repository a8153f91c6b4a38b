package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tmd/pkg/cache"
	"github.com/matzehuels/tmd/pkg/geometry"
	tmdio "github.com/matzehuels/tmd/pkg/io"
	"github.com/matzehuels/tmd/pkg/observability"
	"github.com/matzehuels/tmd/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Finder tree.PrincipalAxisFinder
	Logger *log.Logger

	// TTL is the lifetime of cache entries written by the runner.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Finder: geometry.PCA{},
		Logger: logger,
		TTL:    cache.TTLReport,
	}
}

// Analyze computes the report for t, serving it from the cache when an
// entry for the same tree content and options exists. The boolean reports
// a cache hit.
func (r *Runner) Analyze(ctx context.Context, t *tree.Tree, opts Options) (*Report, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	treeHash, err := hashTree(t)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ReportKey(treeHash, opts.ReportKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached Report
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "report")
				r.Logger.Debug("report from cache", "id", cached.ID, "tree", treeHash[:12])
				return &cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "report")
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, t.Size())
	start := time.Now()
	report := Analyze(t, opts, r.Finder)
	report.TreeHash = treeHash
	duration := time.Since(start)
	hooks.OnAnalyzeComplete(ctx, t.Size(), len(report.Sections), duration, nil)

	r.Logger.Info("analyzed tree",
		"size", report.Size,
		"sections", len(report.Sections),
		"duration", duration)

	if data, err := json.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "report", len(data))
		}
	}

	return report, false, nil
}

// Simplify returns the reduced tree for t, with caching.
func (r *Runner) Simplify(ctx context.Context, t *tree.Tree, opts Options) (*tree.Tree, error) {
	r.applyLogger(&opts)

	treeHash, err := hashTree(t)
	if err != nil {
		return nil, err
	}
	cacheKey := r.Keyer.TreeKey(treeHash, "simplify")

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := tmdio.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "tree")
				return cached, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "tree")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Analysis()
	hooks.OnSimplifyStart(ctx, t.Size())
	start := time.Now()
	simplified := t.Simplify()
	duration := time.Since(start)
	hooks.OnSimplifyComplete(ctx, t.Size(), simplified.Size(), duration, nil)

	r.Logger.Info("simplified tree",
		"size", t.Size(),
		"simplified", simplified.Size(),
		"duration", duration)

	if data, err := tmdio.MarshalTree(simplified); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.TTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "tree", len(data))
		}
	}
	return simplified, nil
}

// PrincipalAxis returns the principal direction of t in the options' plane.
// It is cheap enough that results are not cached.
func (r *Runner) PrincipalAxis(ctx context.Context, t *tree.Tree, opts Options) ([2]float64, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return [2]float64{}, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return [2]float64{}, err
	}
	dir, err := t.PCA(r.Finder, opts.plane, opts.Component)
	if err != nil {
		return [2]float64{}, err
	}
	r.Logger.Debug("principal axis", "plane", opts.Plane, "component", opts.Component, "direction", dir)
	return dir, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashTree returns the content hash of t.
func hashTree(t *tree.Tree) (string, error) {
	data, err := tmdio.MarshalTree(t)
	if err != nil {
		return "", fmt.Errorf("serialize tree for cache key: %w", err)
	}
	return cache.Hash(data), nil
}
