package commands

import (
	"github.com/urfave/cli/v3"
)

// GlobalFlags returns the flags shared by every command. Values are written
// to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("UIKIT_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (logs go to stderr when unset)",
			Sources:     cli.EnvVars("UIKIT_LOG_FILE"),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("UIKIT_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
	}
}

// RegisterAll adds every subcommand to app. The demo command is returned so
// callers can make it the default action.
func RegisterAll(app *cli.Command, flags *Flags) (*cli.Command, *DemoCmd) {
	demo := NewDemoCmd(flags)

	app = demo.Register(app)
	app = NewTableCmd(flags).Register(app)
	app = NewNotifyCmd(flags).Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	return app, demo
}
