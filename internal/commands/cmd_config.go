package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/uikit/internal/core/config"
	"github.com/colonyops/uikit/internal/core/styles"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "uikit config validate",
				Description: "Loads the configuration file and reports every invalid field.",
				Action:      cmd.validate,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration",
				UsageText: "uikit config show",
				Action:    cmd.show,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) validate(_ context.Context, c *cli.Command) error {
	// The Before hook already rejects an invalid file; a nil config here
	// means the hook was skipped.
	cfg := cmd.flags.loaded()
	if err := cfg.Validate(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(c.Root().Writer, styles.ValidStyle.Render(styles.IconSuccess+" "+cmd.flags.ConfigPath+" is valid"))
	return err
}

func (cmd *ConfigCmd) show(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.loaded()
	return writeConfig(c, cfg)
}

func writeConfig(c *cli.Command, cfg config.Config) error {
	enc := yaml.NewEncoder(c.Root().Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
