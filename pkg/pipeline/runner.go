package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/cache"
	tiebackio "github.com/xinfuwcx/tieback/pkg/io"
	"github.com/xinfuwcx/tieback/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
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
		Logger: logger,
	}
}

// Execute runs the complete load → generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	cfg, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Config = cfg
	result.Warnings = anchor.Warnings(cfg)
	result.Stats.LoadTime = time.Since(loadStart)
	result.ConfigHash = ConfigHash(cfg, opts)

	r.Logger.Info("loaded configuration",
		"name", cfg.Name,
		"levels", len(cfg.EnabledLevels()),
		"duration", result.Stats.LoadTime)

	// Stage 2: Generate
	genStart := time.Now()
	layout, layoutHit, err := r.GenerateWithCacheInfo(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = layout
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.AnchorCount = len(layout.Anchors)
	result.Stats.BeamCount = len(layout.Beams)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("generated layout",
		"anchors", len(layout.Anchors),
		"beams", len(layout.Beams),
		"stability", layout.Quality.StabilityScore,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the configuration from disk, or returns the inline config.
func (r *Runner) Load(opts Options) (*anchor.Config, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Config != nil {
		return opts.Config, nil
	}
	return tiebackio.ReadConfig(opts.ConfigPath)
}

// GenerateWithCacheInfo generates a layout with caching and returns cache
// hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, cfg *anchor.Config, opts Options) (*anchor.Result, bool, error) {
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(ConfigHash(cfg, opts), opts.LayoutKeyOpts(cfg.Strategy))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := tiebackio.ReadResult(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to regenerate
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Validate
	effective := *cfg
	if opts.Optimize {
		effective.Flags.OptimizeSpacing = true
	}

	valStart := time.Now()
	observability.Generation().OnValidateStart(ctx, len(effective.Levels))
	err := anchor.Validate(&effective)
	observability.Generation().OnValidateComplete(ctx, time.Since(valStart), err)
	if err != nil {
		return nil, false, err
	}

	// Generate
	genStart := time.Now()
	observability.Generation().OnGenerateStart(ctx, len(effective.EnabledLevels()))
	layout, err := anchor.Generate(effective)
	observability.Generation().OnGenerateComplete(ctx,
		layoutAnchorCount(layout), layoutBeamCount(layout), time.Since(genStart), err)
	if err != nil {
		return nil, false, err
	}
	observability.Generation().OnQualityComplete(ctx,
		len(layout.Quality.Issues), layout.Quality.StabilityScore, time.Since(genStart))

	// Cache the result
	var buf bytes.Buffer
	if err := tiebackio.WriteResult(layout, &buf); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", buf.Len())
		}
	}

	return layout, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, cfg *anchor.Config, opts Options) (*anchor.Result, error) {
	layout, _, err := r.GenerateWithCacheInfo(ctx, cfg, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout *anchor.Result, cfg *anchor.Config, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the layout content
	var buf bytes.Buffer
	if err := tiebackio.WriteResult(layout, &buf); err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(buf.Bytes())

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	renderStart := time.Now()
	observability.Generation().OnRenderStart(ctx, opts.Formats)
	rendered, err := renderFormats(layout, cfg, opts)
	observability.Generation().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout *anchor.Result, cfg *anchor.Config, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, cfg, opts)
	return artifacts, err
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

// ConfigHash computes the content hash identifying a configuration and the
// generation options that affect geometry. Identical configs always hash
// identically, so cache entries are shared across CLI and API entry points.
func ConfigHash(cfg *anchor.Config, opts Options) string {
	payload := struct {
		Config   *anchor.Config `json:"config"`
		Optimize bool           `json:"optimize"`
	}{cfg, opts.Optimize}

	data, _ := json.Marshal(payload)
	return cache.Hash(data)
}

func layoutAnchorCount(r *anchor.Result) int {
	if r == nil {
		return 0
	}
	return len(r.Anchors)
}

func layoutBeamCount(r *anchor.Result) int {
	if r == nil {
		return 0
	}
	return len(r.Beams)
}
