package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
	pkgio "github.com/xinfuwcx/tieback/pkg/io"
)

// validateCommand creates the validate command for checking configurations.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.toml|config.json>",
		Short: "Validate a configuration without generating",
		Long: `Validate a configuration file without generating geometry.

Structural errors (broken outline, inverted spacing bounds, too many levels)
fail the command. Out-of-practice values (steep angles, thin walls) are
reported as warnings and do not fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

func runValidate(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)

	cfg, err := pkgio.ReadConfig(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d levels defined", input, len(cfg.Levels))

	warnings := anchor.Warnings(cfg)
	if err := anchor.Validate(cfg); err != nil {
		printError("%s", errors.UserMessage(err))
		printDetail("code: %s", errors.GetCode(err))
		return err
	}

	printSuccess("Configuration is valid")
	printDetail("%d levels enabled, %d wall segments", len(cfg.EnabledLevels()), cfg.SegmentCount())
	for _, w := range warnings {
		printWarning("%s", w)
	}
	printNewline()
	printNextStep("Generate", "tieback generate "+input)
	return nil
}
