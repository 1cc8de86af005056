package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/pipeline"
)

// reportCommand creates the report command for inspecting layout quality.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		noCache  bool
		optimize bool
	)

	cmd := &cobra.Command{
		Use:   "report <config.toml|config.json>",
		Short: "Print the quality report for a configuration",
		Long: `Generate a layout and print its quality report: interference issues,
spacing warnings, the stability score, and per-level statistics.

The layout itself is not written anywhere; use 'generate' for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), args[0], noCache, optimize)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "run the spacing optimizer before reporting")

	return cmd
}

func (c *CLI) runReport(ctx context.Context, input string, noCache, optimize bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		ConfigPath: input,
		Optimize:   optimize,
		Formats:    []string{pipeline.FormatJSON},
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d anchors", result.Stats.AnchorCount))

	printReport(result.Layout, result.Config)
	return nil
}

// printReport renders the quality report and statistics to stdout.
func printReport(layout *anchor.Result, cfg *anchor.Config) {
	q := layout.Quality
	stats := layout.Stats

	fmt.Println(StyleTitle.Render("Quality Report"))
	printNewline()

	printKeyValue("Stability", scoreStyle(q.StabilityScore).Render(fmt.Sprintf("%.2f", q.StabilityScore)))
	printKeyValue("Anchors", strconv.Itoa(stats.TotalAnchors))
	printKeyValue("Beams", strconv.Itoa(stats.TotalBeams))
	printKeyValue("Anchor length", fmt.Sprintf("%.1f m", stats.TotalAnchorLength))
	printKeyValue("Beam length", fmt.Sprintf("%.1f m", stats.TotalBeamLength))
	printKeyValue("Avg spacing", fmt.Sprintf("%.2f m", stats.AverageSpacing))
	printNewline()

	fmt.Println(levelTable(layout, cfg))
	printNewline()

	if len(q.Issues) == 0 && len(q.SpacingWarnings) == 0 {
		printSuccess("No interference issues found")
	}
	for _, issue := range q.Issues {
		printError("%s: %s / %s (%.2f m apart)", issue.Kind, issue.AnchorA, issue.AnchorB, issue.Distance)
	}
	for _, w := range q.SpacingWarnings {
		printWarning("%s", w)
	}
	for _, rec := range q.Recommendations {
		printInfo("%s", rec)
	}
}

// levelTable renders per-level counts as a bordered table.
func levelTable(layout *anchor.Result, cfg *anchor.Config) string {
	elevations := map[int]float64{}
	for _, lv := range cfg.Levels {
		elevations[lv.ID] = lv.Elevation
	}

	var rows [][]string
	for _, level := range layout.Levels() {
		anchors := layout.AnchorsAt(level)
		var length float64
		for _, a := range anchors {
			length += a.Length
		}
		rows = append(rows, []string{
			strconv.Itoa(level),
			fmt.Sprintf("%.1f", elevations[level]),
			strconv.Itoa(len(anchors)),
			fmt.Sprintf("%.1f", length),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Level", "Elev (m)", "Anchors", "Length (m)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return StyleValue
		}).
		Render()
}
