// Package render provides drawing output for generated anchor layouts.
//
// # Overview
//
// This package contains the rendering layer that turns generated layouts
// into deliverable drawings. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Plan-view drawings (in [planview] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	dot := planview.ToDOT(result, cfg.Wall, planview.Options{})
//	svg, err := planview.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Plan View
//
// The [planview] subpackage projects the support system onto the horizontal
// plane with true, pinned geometry: the wall outline, wale beams per level,
// and every anchor with its projected bar.
//
// [planview]: github.com/xinfuwcx/tieback/pkg/render/planview
package render
