package pipeline

import (
	"bytes"
	"fmt"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	tiebackio "github.com/xinfuwcx/tieback/pkg/io"
	"github.com/xinfuwcx/tieback/pkg/render/planview"
)

// renderFormats produces every requested artifact from a generated layout.
// The DOT source is built once and reused for all Graphviz-derived formats.
func renderFormats(layout *anchor.Result, cfg *anchor.Config, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	needDOT := false
	for _, f := range opts.Formats {
		if f != FormatJSON {
			needDOT = true
		}
	}
	if needDOT {
		dot = planview.ToDOT(layout, cfg.Wall, planview.Options{
			Detailed: opts.Detailed,
			Scale:    opts.Scale,
		})
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			var buf bytes.Buffer
			if err := tiebackio.WriteResult(layout, &buf); err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[FormatJSON] = buf.Bytes()

		case FormatDOT:
			artifacts[FormatDOT] = []byte(dot)

		case FormatSVG:
			svg, err := planview.RenderSVG(dot)
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[FormatSVG] = svg

		case FormatPDF:
			pdf, err := planview.RenderPDF(dot)
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[FormatPDF] = pdf

		case FormatPNG:
			png, err := planview.RenderPNG(dot, 2.0)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[FormatPNG] = png

		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}

	return artifacts, nil
}
