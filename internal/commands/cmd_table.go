package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/uikit/internal/core/dataset"
	"github.com/colonyops/uikit/internal/core/styles"
	"github.com/colonyops/uikit/pkg/iojson"
	"github.com/colonyops/uikit/pkg/tabular"
)

type TableCmd struct {
	flags *Flags
	input *iojson.FileReader[[]dataset.Record]

	sample   bool
	sortBy   string
	desc     bool
	page     int
	pageSize int
	columns  []string
	jsonOut  bool
	jsonl    bool
}

// NewTableCmd creates a new table command
func NewTableCmd(flags *Flags) *TableCmd {
	return &TableCmd{
		flags: flags,
		input: dataset.NewReader("path to a JSON, JSONL or YAML dataset (reads JSON from stdin if not provided)"),
	}
}

// Register adds the table command to the application
func (cmd *TableCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "table",
		Usage:     "Sort and paginate a dataset",
		UsageText: "uikit table [options] < records.json",
		Description: `Prints one page of records sorted by a field.

Fields are dotted paths into each record, e.g. owner.name. Records with no
value for the sort field are listed last in either direction.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "sample",
				Usage:       "use the built-in sample dataset",
				Destination: &cmd.sample,
			},
			&cli.StringFlag{
				Name:        "sort",
				Aliases:     []string{"s"},
				Usage:       "field to sort by (defaults to table.sort_field, then the first column)",
				Destination: &cmd.sortBy,
			},
			&cli.BoolFlag{
				Name:        "desc",
				Usage:       "sort descending",
				Destination: &cmd.desc,
			},
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page number, starting at 1",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Usage:       "records per page (defaults to table.page_size)",
				Destination: &cmd.pageSize,
			},
			&cli.StringSliceFlag{
				Name:        "columns",
				Usage:       "columns to print, as dotted paths",
				Destination: &cmd.columns,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the page as JSON",
				Destination: &cmd.jsonOut,
			},
			&cli.BoolFlag{
				Name:        "jsonl",
				Usage:       "print the page's records as JSON lines",
				Destination: &cmd.jsonl,
			},
		},
		Action: cmd.run,
	})

	return app
}

// tablePage is one page of a dataset.
type tablePage struct {
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	Total   int              `json:"total"`
	Sort    string           `json:"sort"`
	Order   string           `json:"order"`
	Columns []string         `json:"columns"`
	Records []dataset.Record `json:"records"`
}

func (cmd *TableCmd) run(_ context.Context, c *cli.Command) error {
	records := dataset.Sample()
	if !cmd.sample {
		var err error
		records, err = cmd.input.Read()
		if err != nil {
			return err
		}
	}

	page, err := cmd.paginate(records)
	if err != nil {
		return err
	}

	log.Debug().
		Str("sort", page.Sort).
		Str("order", page.Order).
		Int("page", page.Page).
		Int("total", page.Total).
		Msg("table page")

	switch {
	case cmd.jsonl:
		return writeLines(c.Root().Writer, page)
	case cmd.jsonOut:
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, page)
	}
	return renderPage(c.Root().Writer, page)
}

func (cmd *TableCmd) paginate(records []dataset.Record) (tablePage, error) {
	cfg := cmd.flags.loaded().Table

	columns := cmd.columns
	if len(columns) == 0 {
		columns = cfg.Columns
	}
	if len(columns) == 0 {
		columns = dataset.Columns(records)
	}

	spec := cfg.Sort()
	if cmd.sortBy != "" {
		spec.Field = cmd.sortBy
	}
	if spec.Field == "" && len(columns) > 0 {
		spec.Field = columns[0]
	}
	if cmd.desc {
		spec.Direction = tabular.Descending
	}

	size := cmd.pageSize
	if size == 0 {
		size = cfg.PageSize
	}
	if size < 1 {
		return tablePage{}, fmt.Errorf("page size must be at least 1, got %d", size)
	}
	if cmd.page < 1 {
		return tablePage{}, fmt.Errorf("page must be at least 1, got %d", cmd.page)
	}

	sorted := tabular.SortByPath(records, spec)
	rows := tabular.Paginate(sorted, tabular.PageSpec{Index: cmd.page - 1, Size: size})

	return tablePage{
		Page:    cmd.page,
		Pages:   tabular.PageCount(len(records), size),
		Total:   len(records),
		Sort:    spec.Field,
		Order:   spec.Direction.String(),
		Columns: columns,
		Records: rows,
	}, nil
}

// writeLines prints one JSON object per record, in page order.
func writeLines(w io.Writer, page tablePage) error {
	for _, rec := range page.Records {
		if err := iojson.WriteLine(w, rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

func renderPage(w io.Writer, page tablePage) error {
	headers := make([]string, len(page.Columns))
	for i, col := range page.Columns {
		headers[i] = col
		if col == page.Sort {
			headers[i] += " " + sortArrow(page.Order)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return styles.TableCellStyle
		})

	for _, rec := range page.Records {
		cells := make([]string, len(page.Columns))
		for i, col := range page.Columns {
			cells[i] = tabular.Format(tabular.Lookup(rec, col))
		}
		t.Row(cells...)
	}

	footer := fmt.Sprintf("Page %d of %d · %s records", page.Page, max(page.Pages, 1), humanize.Comma(int64(page.Total)))
	if len(page.Records) == 0 {
		footer += " · no records on this page"
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), styles.FooterStyle.Render(footer))
	return err
}

func sortArrow(order string) string {
	if order == tabular.Descending.String() {
		return "▼"
	}
	return "▲"
}
