package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxorbit/pkg/cache"
	"github.com/matzehuels/boxorbit/pkg/dataset"
	"github.com/matzehuels/boxorbit/pkg/observability"
)

// Runner executes builds and caches their artifacts. It keeps no per-build
// state, so one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Loader *dataset.Loader
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching and a nil keyer
// uses cache.DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Loader: dataset.NewLoader(), Logger: logger}
}

// Execute builds opts.Source, enters Rendering and renders opts.Formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	start := time.Now()
	b, info, err := r.build(ctx, &opts)
	if err != nil {
		return nil, err
	}
	buildTime := time.Since(start)
	if err := b.StartRendering(); err != nil {
		return nil, err
	}

	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, b, opts)
	if err != nil {
		return nil, err
	}
	info.RenderHit = hit

	return &Result{
		Build:     b,
		Artifacts: artifacts,
		CacheInfo: info,
		Stats: Stats{
			Films:      b.Dataset.Len(),
			Years:      len(b.Context.Years()),
			Labels:     len(b.Scene.Labels),
			BuildTime:  buildTime,
			RenderTime: time.Since(start),
		},
	}, nil
}

// Build drives a new Build from Idle to Fitted, logging one line per stage.
func (r *Runner) Build(ctx context.Context, opts Options) (*Build, error) {
	b, _, err := r.build(ctx, &opts)
	return b, err
}

func (r *Runner) build(ctx context.Context, opts *Options) (*Build, CacheInfo, error) {
	var info CacheInfo
	r.applyLogger(opts)
	if err := opts.ValidateForBuild(); err != nil {
		return nil, info, err
	}
	logger := opts.Logger
	b := NewBuild(*opts.Config)

	load := func(ctx context.Context, src string) (*dataset.Dataset, error) {
		ds, hit, err := r.loadSource(ctx, src, opts.Refresh, opts.TTL())
		info.SourceHit = hit
		return ds, err
	}

	steps := []struct {
		stage Stage
		run   func() error
		done  func()
	}{
		{Loading, func() error { return b.Load(ctx, opts.Source, load) }, func() {
			logger.Info("loaded dataset", "source", opts.Source, "films", b.Dataset.Len(), "cached", info.SourceHit)
		}},
		{Normalizing, b.Normalize, func() {
			logger.Info("normalized", "years", len(b.Context.Years()), "rating", b.Context.Rating, "gross", b.Context.Gross)
		}},
		{Placing, b.Place, func() {
			logger.Info("placed scene", "objects", b.Scene.Len(), "labels", len(b.Scene.Labels))
		}},
		{Fitted, func() error { return b.Fit(opts.Aspect()) }, func() {
			logger.Info("fitted camera", "distance", fmt.Sprintf("%.1f", b.Camera.Distance()))
		}},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, info, err
		}
		start := time.Now()
		observability.Pipeline().OnStageStart(ctx, s.stage.String())
		err := s.run()
		d := time.Since(start)
		observability.Pipeline().OnStageComplete(ctx, s.stage.String(), d, err)
		if err != nil {
			_ = b.Close()
			return nil, info, err
		}
		s.done()
		logger.Debug("stage complete", "stage", s.stage, "duration", d)
	}
	return b, info, nil
}

// loadSource reads src, serving remote sources from the cache unless refresh
// is set. Local files and stdin are always read directly.
func (r *Runner) loadSource(ctx context.Context, src string, refresh bool, ttl time.Duration) (*dataset.Dataset, bool, error) {
	remote := strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
	if !remote {
		ds, err := r.Loader.Load(ctx, src)
		return ds, false, err
	}

	key := r.Keyer.SourceKey(src)
	if !refresh {
		if raw, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if films, err := dataset.Parse(bytes.NewReader(raw)); err == nil {
				observability.Cache().OnCacheHit(ctx, "source")
				return &dataset.Dataset{Source: src, Films: films, Raw: raw}, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "source")
	}

	ds, err := r.Loader.Load(ctx, src)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, ds.Raw, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "source", len(ds.Raw))
	}
	return ds, false, nil
}

// SceneKey identifies the scene built from b's dataset and configuration.
func (r *Runner) SceneKey(b *Build) string {
	cfg, _ := json.Marshal(b.Config)
	return r.Keyer.SceneKey(cache.Hash(b.Dataset.Raw), cache.SceneKeyOpts{
		ConfigHash: cache.Hash(cfg),
		Backdrop:   b.Config.Backdrop.Enabled,
	})
}

// RenderWithCacheInfo renders opts.Formats from b, reusing cached artifacts
// keyed by the scene and the per-format options. The bool reports whether
// every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b *Build, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	sceneKey := r.SceneKey(b)
	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		start := time.Now()
		data, err := RenderFormat(b, format, opts)
		observability.Pipeline().OnRender(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		if err := r.Cache.Set(ctx, key, data, opts.TTL()); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
		artifacts[format] = data
	}

	opts.Logger.Info("rendered outputs", "formats", opts.Formats, "cached", allHit)
	return artifacts, allHit, nil
}

// Render is RenderWithCacheInfo without the cache report.
func (r *Runner) Render(ctx context.Context, b *Build, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, b, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger gives opts the runner's logger when it has none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
