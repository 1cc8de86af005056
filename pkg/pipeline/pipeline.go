// Package pipeline provides the core layout pipeline for tieback.
//
// This package implements the complete load → generate → render pipeline
// that can be used by CLI, API, and worker components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and decode the layout configuration (TOML or JSON)
//  2. Generate: Produce anchor and wale-beam geometry with quality checks
//  3. Render: Export the result in various formats (JSON, DOT, SVG, PDF, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ConfigPath: "pit.toml",
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	cfg, err := runner.Load(opts)
//
//	// Generate with an existing config
//	layout, err := runner.Generate(ctx, cfg, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, cfg, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/cache"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultScale is the default plan-view drawing scale in graph units
	// per meter.
	DefaultScale = 1.0
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of ConfigPath or Config must be set:
	// ConfigPath reads a TOML/JSON file, Config uses an inline config
	// (the API path).
	ConfigPath string         `json:"config_path,omitempty"`
	Config     *anchor.Config `json:"config,omitempty"`

	// Generate options
	Optimize bool `json:"optimize,omitempty"` // force the spacing pass regardless of config flags
	Refresh  bool `json:"refresh,omitempty"`  // bypass the layout cache read

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // label anchors in the plan view
	Scale    float64  `json:"scale,omitempty"`    // plan-view units per meter

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Config is the loaded configuration the layout was generated from.
	Config *anchor.Config

	// ConfigHash is the content hash of the effective configuration,
	// including the generation options that affect geometry.
	ConfigHash string

	// Layout is the generated anchor and beam geometry.
	Layout *anchor.Result

	// Warnings are non-fatal configuration findings (range checks, clamps).
	Warnings []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AnchorCount  int
	BeamCount    int
	LoadTime     time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the generated layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg, pdf, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.ConfigPath == "" && o.Config == nil {
		return fmt.Errorf("config_path or config is required")
	}
	if o.ConfigPath != "" && o.Config != nil {
		return fmt.Errorf("config_path and config are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns cache key options for layout generation.
func (o *Options) LayoutKeyOpts(strategy string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Optimize: o.Optimize,
		Strategy: strategy,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Engine: fmt.Sprintf("neato/%.3f/detailed=%t", o.Scale, o.Detailed),
	}
}
