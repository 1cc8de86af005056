package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
	pkgio "github.com/xinfuwcx/tieback/pkg/io"
)

// configTemplate is one starter configuration offered by the init command.
type configTemplate struct {
	name        string
	description string
	build       func() anchor.Config
}

// templates are the built-in starter configurations, shallowest first.
var templates = []configTemplate{
	{
		name:        "shallow",
		description: "single support level, small rectangular pit",
		build:       shallowTemplate,
	},
	{
		name:        "standard",
		description: "six support levels, 40×25 m pit",
		build:       anchor.DefaultConfig,
	},
	{
		name:        "deep",
		description: "six levels with multi-segment anchors below -8 m",
		build:       deepTemplate,
	},
}

// initCommand creates the init command for scaffolding configurations.
func (c *CLI) initCommand() *cobra.Command {
	var templateName string

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Scaffold a starter configuration",
		Long: `Write a starter configuration file to edit from.

Without --template the command shows an interactive picker. The output file
defaults to tieback.toml in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := "tieback.toml"
			if len(args) == 1 {
				output = args[0]
			}
			return runInit(output, templateName)
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "", "template name: shallow, standard, deep (skips the picker)")

	return cmd
}

func runInit(output, templateName string) error {
	if err := errors.ValidateConfigFilename(filepath.Base(output)); err != nil {
		return err
	}
	if _, err := os.Stat(output); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", output)
	}

	tmpl, err := pickTemplate(templateName)
	if err != nil {
		return err
	}
	if tmpl == nil {
		printInfo("Cancelled")
		return nil
	}

	cfg := tmpl.build()
	if err := pkgio.WriteConfig(&cfg, output); err != nil {
		return err
	}

	printSuccess("Wrote %s template", tmpl.name)
	printFile(output)
	printNewline()
	printNextStep("Validate", "tieback validate "+output)
	printNextStep("Generate", "tieback generate "+output)
	return nil
}

// pickTemplate resolves the template by name, or interactively when name is
// empty. A nil template with nil error means the picker was cancelled.
func pickTemplate(name string) (*configTemplate, error) {
	if name != "" {
		for i := range templates {
			if templates[i].name == name {
				return &templates[i], nil
			}
		}
		return nil, fmt.Errorf("unknown template: %s (available: shallow, standard, deep)", name)
	}

	model, err := tea.NewProgram(newTemplateListModel(templates)).Run()
	if err != nil {
		return nil, fmt.Errorf("template picker: %w", err)
	}
	return model.(templateListModel).Selected, nil
}

// shallowTemplate is a one-level layout for a small pit.
func shallowTemplate() anchor.Config {
	cfg := anchor.DefaultConfig()
	cfg.Name = "shallow"
	cfg.Wall.Outline = []anchor.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 12}, {X: 0, Y: 12}, {X: 0, Y: 0},
	}
	cfg.Wall.BottomElevation = -6
	for i := range cfg.Levels {
		cfg.Levels[i].Enabled = cfg.Levels[i].ID == 1
	}
	return cfg
}

// deepTemplate switches the lower levels to multi-segment anchors.
func deepTemplate() anchor.Config {
	cfg := anchor.DefaultConfig()
	cfg.Name = "deep"
	for i := range cfg.Levels {
		if cfg.Levels[i].Enabled && cfg.Levels[i].Elevation < -8 {
			cfg.Levels[i].Anchor.Kind = anchor.KindMulti
			cfg.Levels[i].Anchor.Segments = 3
		}
	}
	cfg.Flags.OptimizeSpacing = true
	return cfg
}
