// Package planview renders generated anchor layouts as plan-view drawings.
//
// # Overview
//
// The plan view projects the whole support system onto the horizontal plane:
// the wall outline as a heavy polyline, wale beams as thick segments, and
// anchors as points with rays toward their projected ends. Levels are
// distinguished by color, trailing sub-bars of multi-segment anchors by
// dashed strokes.
//
// # Usage
//
// Convert a result to DOT, then render to SVG:
//
//	dot := planview.ToDOT(result, cfg.Wall, planview.Options{})
//	svg, err := planview.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := planview.RenderPDF(dot)
//	png, err := planview.RenderPNG(dot, 2.0)  // 2x scale
//
// # Pinned Positions
//
// Every node in the generated DOT carries a pinned position ("x,y!"), and
// the graph selects the neato engine, so Graphviz reproduces the true
// geometry rather than inventing a layout. The DOT source can also be saved
// and processed with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package planview
