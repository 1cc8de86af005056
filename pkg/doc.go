// Package pkg provides the core libraries for tieback anchor layout generation.
//
// # Overview
//
// Tieback generates multi-level ground-anchor and wale-beam layouts for
// deep-excavation retaining walls from a parametric configuration. The pkg
// directory is organized into five main areas:
//
//  1. [anchor] - Domain logic (validation, geometry generation, quality, optimizer)
//  2. [io] - Configuration and result serialization (TOML, JSON)
//  3. [render] - Plan-view drawings (DOT, SVG, PDF, PNG)
//  4. [cache] - Layout and artifact caching (file, memory, Redis)
//  5. [pipeline] - Orchestration (load → generate → render)
//
// # Architecture
//
// The typical data flow through tieback:
//
//	Config file (TOML/JSON)
//	         ↓
//	    [io] package (decode + range checks)
//	         ↓
//	    [anchor] package (per-level geometry, quality scan, optimizer)
//	         ↓
//	    [render/planview] package (plan-view drawing)
//	         ↓
//	    JSON/DOT/SVG/PDF/PNG output
//
// # Quick Start
//
// Generate a layout and render it:
//
//	import (
//	    "github.com/xinfuwcx/tieback/pkg/anchor"
//	    "github.com/xinfuwcx/tieback/pkg/render/planview"
//	)
//
//	// 1. Build or load a configuration
//	cfg := anchor.DefaultConfig()
//
//	// 2. Generate the geometry
//	layout, _ := anchor.Generate(cfg)
//
//	// 3. Render a plan view
//	dot := planview.ToDOT(layout, cfg.Wall, planview.Options{})
//	svg, _ := planview.RenderSVG(dot)
//
// # Main Packages
//
// [anchor] - Configuration types, structural validation, per-level anchor and
// wale-beam generation, multi-segment decomposition, the interference scan,
// and the spacing optimizer. Generation is fully deterministic.
//
// [io] - Config decoding (TOML via BurntSushi/toml, JSON) and layout
// import/export.
//
// [render/planview] - Graphviz-based plan-view drawings with pinned positions.
// [render] holds shared SVG-to-PDF/PNG conversion.
//
// [cache] - Content-addressed caching of layouts and rendered artifacts with
// file, in-memory LRU, Redis, and null backends.
//
// [pipeline] - The load → generate → render pipeline shared by the CLI and
// the HTTP API, with per-stage cache integration.
//
// [errors] - Coded errors and practice-range checks shared across packages.
//
// [observability] - Hook interfaces for metrics backends.
//
// [anchor]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/anchor
// [io]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/io
// [render]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/render
// [render/planview]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/render/planview
// [cache]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/errors
// [observability]: https://pkg.go.dev/github.com/xinfuwcx/tieback/pkg/observability
package pkg
