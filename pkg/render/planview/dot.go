package planview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/render"
)

// Options configures plan-view rendering.
type Options struct {
	// Detailed labels every anchor with its id. When false, anchors are
	// anonymous points.
	Detailed bool

	// Scale is the number of layout units per meter. Zero uses DefaultScale.
	Scale float64
}

// DefaultScale maps one meter to one graph unit, which neato turns into
// 72 points per unit.
const DefaultScale = 1.0

// levelColors cycles per level id so stacked levels stay distinguishable in
// a single plan view.
var levelColors = []string{
	"#2563eb", "#dc2626", "#16a34a", "#d97706", "#9333ea",
	"#0891b2", "#be123c", "#4d7c0f", "#b45309", "#6d28d9",
}

func levelColor(level int) string {
	if level < 1 {
		level = 1
	}
	return levelColors[(level-1)%len(levelColors)]
}

// ToDOT converts a generated layout and its wall outline to Graphviz DOT in
// plan view. Every element carries a pinned position, so the neato engine
// reproduces the true geometry instead of computing its own layout.
//
// The wall outline is drawn as a heavy closed polyline, wale beams as thick
// segments colored by level, and anchors as points with a ray toward their
// projected end.
func ToDOT(result *anchor.Result, wall anchor.Wall, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("graph plan {\n")
	buf.WriteString("  layout=\"neato\";\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.04, label=\"\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	// Wall outline.
	for i, p := range wall.Outline {
		fmt.Fprintf(&buf, "  %q [pos=\"%s!\"];\n", wallID(i), pos(p, scale))
	}
	for i := 1; i < len(wall.Outline); i++ {
		fmt.Fprintf(&buf, "  %q -- %q [color=\"#111827\", penwidth=3];\n", wallID(i-1), wallID(i))
	}
	buf.WriteString("\n")

	// Wale beams, one thick segment per (level, wall segment).
	for _, b := range result.Beams {
		color := levelColor(b.Level)
		fmt.Fprintf(&buf, "  %q [pos=\"%s!\"];\n", b.ID+".s", pos(b.Start, scale))
		fmt.Fprintf(&buf, "  %q [pos=\"%s!\"];\n", b.ID+".e", pos(b.End, scale))
		fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=%.1f];\n",
			b.ID+".s", b.ID+".e", color, 1+b.Width*4)
	}
	buf.WriteString("\n")

	// Anchors: a point at the head, a ray to the projected end. Grouted
	// bars get a bolder ray.
	for _, a := range result.Anchors {
		color := levelColor(a.Level)
		attrs := fmt.Sprintf("pos=\"%s!\", color=%q", pos(a.Origin, scale), color)
		if opts.Detailed {
			attrs += fmt.Sprintf(", xlabel=%q, fontsize=8", a.ID)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", a.ID, attrs)
		fmt.Fprintf(&buf, "  %q [pos=\"%s!\", width=0.01, color=%q];\n", a.ID+".t", pos(a.End, scale), color)

		penwidth := 1.0
		if a.Grout != nil {
			penwidth = 2.0
		}
		fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=%.1f, style=%s];\n",
			a.ID, a.ID+".t", color, penwidth, anchorStyle(a))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func anchorStyle(a anchor.Anchor) string {
	if a.SubBar > 1 {
		return "dashed"
	}
	return "solid"
}

func wallID(i int) string {
	return "wall." + strconv.Itoa(i)
}

// pos formats a plan-view position for a pinned neato node.
func pos(p anchor.Point, scale float64) string {
	return fmt.Sprintf("%.3f,%.3f", p.X*scale, p.Y*scale)
}

// RenderSVG renders a DOT plan view to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT plan view as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT plan view as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
