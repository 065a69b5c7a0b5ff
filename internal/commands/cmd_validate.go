package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/uikit/internal/core/styles"
	"github.com/colonyops/uikit/internal/core/validate"
)

type ValidateCmd struct {
	flags    *Flags
	existing []string

	// interactive reports whether a missing name may be asked for with a form.
	interactive func() bool
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{
		flags:       flags,
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	existingFlag := func(usage string) cli.Flag {
		return &cli.StringSliceFlag{
			Name:        "existing",
			Aliases:     []string{"e"},
			Usage:       usage,
			Destination: &cmd.existing,
		}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "validate",
		Usage: "Check names the way the form dialogs do",
		Commands: []*cli.Command{
			{
				Name:      "folder",
				Usage:     "Validate a folder name",
				UsageText: "uikit validate folder [--existing name]... [name]",
				Flags:     []cli.Flag{existingFlag("names already used in the destination folder")},
				Action: func(ctx context.Context, c *cli.Command) error {
					return cmd.run(c, "folder", validate.FolderName)
				},
			},
			{
				Name:      "group",
				Usage:     "Validate a group name",
				UsageText: "uikit validate group [--existing name]... [name]",
				Flags:     []cli.Flag{existingFlag("group names that already exist")},
				Action: func(ctx context.Context, c *cli.Command) error {
					return cmd.run(c, "group", validate.GroupName)
				},
			},
		},
	})

	return app
}

func (cmd *ValidateCmd) run(c *cli.Command, kind string, check func(string, ...string) validate.Result) error {
	var name string
	switch {
	case c.Args().Len() == 1:
		name = c.Args().First()
	case c.Args().Len() == 0 && cmd.interactive():
		// The form only submits a name that passes check.
		if err := nameForm(kind, check, cmd.existing, &name).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	default:
		return fmt.Errorf("expected exactly one %s name", kind)
	}

	res := check(name, cmd.existing...)
	if !res.Valid {
		_, _ = fmt.Fprintln(c.Root().Writer, styles.InvalidStyle.Render(styles.IconError+" "+res.Message))
		return errors.New("validation failed")
	}

	_, err := fmt.Fprintln(c.Root().Writer, styles.ValidStyle.Render(fmt.Sprintf("%s %q is a valid %s name", styles.IconSuccess, name, kind)))
	return err
}

// nameForm asks for a name and rejects it inline until check passes.
func nameForm(kind string, check func(string, ...string) validate.Result, existing []string, name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.ToUpper(kind[:1])+kind[1:]+" name").
				Description(fmt.Sprintf("Checked with the same rules as the %s dialog", kind)).
				Validate(nameValidator(check, existing)).
				Value(name),
		),
	).WithTheme(styles.FormTheme())
}

func nameValidator(check func(string, ...string) validate.Result, existing []string) func(string) error {
	return func(s string) error {
		return check(s, existing...).Err()
	}
}
