package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xinfuwcx/tieback/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string  // output file (single format) or base path (multiple)
	formats  string  // comma-separated output formats
	optimize bool    // run the spacing optimizer regardless of config flags
	refresh  bool    // bypass the layout cache read
	noCache  bool    // disable caching entirely
	detailed bool    // label anchors in the plan view
	scale    float64 // plan-view units per meter
}

// generateCommand creates the generate command for producing layouts.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "generate <config.toml|config.json>",
		Short: "Generate an anchor layout from a configuration file",
		Long: `Generate anchor and wale-beam geometry from a configuration file.

The configuration describes the wall outline, the support levels, and the
global spacing constraints. The generated layout can be exported as JSON
geometry or rendered as a plan-view drawing (DOT, SVG, PDF, PNG).

Results are cached locally for faster subsequent runs.

Examples:
  tieback generate pit.toml                      # SVG plan view next to the config
  tieback generate pit.toml -f json,svg -o out/  # multiple formats
  tieback generate pit.toml --optimize           # force the spacing pass`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "run the spacing optimizer")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the layout cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label anchors in the plan view")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "plan-view units per meter")

	return cmd
}

// runGenerate executes the full pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, input string, opts *generateOpts) error {
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Generating layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		ConfigPath: input,
		Optimize:   opts.optimize,
		Refresh:    opts.refresh,
		Formats:    formats,
		Detailed:   opts.detailed,
		Scale:      opts.scale,
		Logger:     c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess("Layout complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.AnchorCount, result.Stats.BeamCount, result.CacheInfo.LayoutHit)
	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	if len(result.Layout.Quality.Issues) > 0 {
		printNewline()
		printNextStep("Inspect", "tieback report "+input)
	}

	return nil
}

// writeArtifacts writes each rendered format to its own file and returns the
// written paths. A single format honors output verbatim; multiple formats
// share a base path with per-format extensions.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	single := len(formats) == 1

	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		var path string
		if single && output != "" {
			path = output
		} else {
			path = basePath(output, input) + "." + format
		}

		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
