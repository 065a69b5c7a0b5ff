package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/uikit/internal/core/dataset"
	"github.com/colonyops/uikit/internal/profiler"
	"github.com/colonyops/uikit/internal/tui"
	"github.com/colonyops/uikit/pkg/iojson"
)

type DemoCmd struct {
	flags   *Flags
	input   *iojson.FileReader[[]dataset.Record]
	columns []string

	profilerPort int
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{
		flags: flags,
		input: dataset.NewReader("path to a JSON, JSONL or YAML dataset (defaults to sample meetings)"),
	}
}

// Register adds the demo command to the application
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Open the interactive table and snackbar demo",
		UsageText: "uikit demo [--file records.json]",
		Description: `Shows a sortable, paginated table with a snackbar.

Press n/s/w/e to raise info, success, warning and error notifications, x to
dismiss, and d to delete a row. Deleting offers an Undo action on u.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Flags returns the demo-specific flags.
func (cmd *DemoCmd) Flags() []cli.Flag {
	return []cli.Flag{
		cmd.input.Flag(),
		&cli.StringSliceFlag{
			Name:        "columns",
			Usage:       "columns to show, as dotted paths",
			Destination: &cmd.columns,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("UIKIT_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Run executes the demo. Exported for use as the default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *DemoCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("demo requires an interactive terminal")
	}

	if cmd.profilerPort > 0 {
		prof := profiler.New(cmd.profilerPort)
		if err := prof.Start(); err != nil {
			return fmt.Errorf("start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := prof.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
	}

	records := dataset.Sample()
	if cmd.input.Path() != "" {
		var err error
		records, err = cmd.input.Read()
		if err != nil {
			return fmt.Errorf("read dataset: %w", err)
		}
	}

	// Console logs would draw over the alt screen.
	logger := log.Logger
	if cmd.flags.LogFile == "" {
		logger = zerolog.Nop()
	}

	model := tui.New(tui.Options{
		Config:  cmd.flags.loaded(),
		Records: records,
		Columns: cmd.columns,
		Logger:  logger,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
