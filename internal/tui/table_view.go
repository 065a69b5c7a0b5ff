package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/uikit/internal/core/dataset"
	"github.com/colonyops/uikit/internal/core/styles"
	"github.com/colonyops/uikit/pkg/tabular"
)

const maxColumnWidth = 28

type row struct {
	id  int
	rec dataset.Record
}

// TableView shows one page of sorted records.
type TableView struct {
	rows    []row
	nextID  int
	columns []string
	sort    tabular.SortSpec

	page  []row
	table table.Model
	pager paginator.Model
}

// NewTableView creates a table over records. An empty sort field sorts by
// the first column.
func NewTableView(records []dataset.Record, columns []string, sort tabular.SortSpec, pageSize int) *TableView {
	if sort.Field == "" && len(columns) > 0 {
		sort.Field = columns[0]
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = max(pageSize, 1)
	pager.ActiveDot = styles.TitleStyle.Render("•")
	pager.InactiveDot = styles.MutedStyle.Render("•")

	t := table.New(table.WithFocused(true), table.WithHeight(pager.PerPage+1))
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeaderStyle.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.CurrentPalette.Muted).
		BorderBottom(true)
	ts.Cell = styles.TableCellStyle
	ts.Selected = styles.TableSelectedStyle
	t.SetStyles(ts)

	v := &TableView{
		columns: columns,
		sort:    sort,
		table:   t,
		pager:   pager,
	}
	v.SetRecords(records)
	return v
}

// SetRecords replaces the table contents and returns to the first page.
func (v *TableView) SetRecords(records []dataset.Record) {
	v.rows = make([]row, len(records))
	for i, rec := range records {
		v.nextID++
		v.rows[i] = row{id: v.nextID, rec: rec}
	}
	v.pager.Page = 0
	v.table.SetCursor(0)
	v.refresh()
}

// Len returns the number of records.
func (v *TableView) Len() int { return len(v.rows) }

// Sort returns the active sort.
func (v *TableView) Sort() tabular.SortSpec { return v.sort }

// Page returns the zero-based page index.
func (v *TableView) Page() int { return v.pager.Page }

// PageRecords returns the records on the current page in display order.
func (v *TableView) PageRecords() []dataset.Record {
	out := make([]dataset.Record, len(v.page))
	for i, r := range v.page {
		out[i] = r.rec
	}
	return out
}

// CycleSort moves the sort to the next column, ascending.
func (v *TableView) CycleSort() {
	if len(v.columns) == 0 {
		return
	}
	i := slices.Index(v.columns, v.sort.Field)
	v.sort = tabular.SortSpec{Field: v.columns[(i+1)%len(v.columns)], Direction: tabular.Ascending}
	v.refresh()
}

// ToggleDirection reverses the sort direction.
func (v *TableView) ToggleDirection() {
	v.sort.Direction = v.sort.Direction.Toggle()
	v.refresh()
}

func (v *TableView) NextPage() {
	v.pager.NextPage()
	v.refresh()
}

func (v *TableView) PrevPage() {
	v.pager.PrevPage()
	v.refresh()
}

func (v *TableView) MoveUp()   { v.table.MoveUp(1) }
func (v *TableView) MoveDown() { v.table.MoveDown(1) }

// SetSize fits the table to the given width and number of visible rows.
func (v *TableView) SetSize(width, height int) {
	v.table.SetWidth(width)
	v.table.SetHeight(max(height, 2))
}

// Removed is a record taken out of the table, kept so it can be restored.
type Removed struct {
	id    int
	index int
	rec   dataset.Record
}

// Record returns the removed record.
func (r Removed) Record() dataset.Record { return r.rec }

// RemoveSelected removes the record under the cursor.
func (v *TableView) RemoveSelected() (Removed, bool) {
	cursor := v.table.Cursor()
	if cursor < 0 || cursor >= len(v.page) {
		return Removed{}, false
	}

	id := v.page[cursor].id
	idx := slices.IndexFunc(v.rows, func(r row) bool { return r.id == id })
	if idx < 0 {
		return Removed{}, false
	}

	removed := Removed{id: id, index: idx, rec: v.rows[idx].rec}
	v.rows = slices.Delete(v.rows, idx, idx+1)
	v.refresh()
	return removed, true
}

// Restore puts a removed record back at its original position.
func (v *TableView) Restore(r Removed) error {
	if r.rec == nil {
		return fmt.Errorf("nothing to restore")
	}
	if slices.ContainsFunc(v.rows, func(x row) bool { return x.id == r.id }) {
		return fmt.Errorf("record already restored")
	}

	at := min(r.index, len(v.rows))
	v.rows = slices.Insert(v.rows, at, row{id: r.id, rec: r.rec})
	v.refresh()
	return nil
}

func (v *TableView) refresh() {
	field := v.sort.Field
	sorted := tabular.SortBy(v.rows, func(r row) any {
		return tabular.Lookup(r.rec, field)
	}, v.sort.Direction)

	v.pager.SetTotalPages(len(sorted))
	if v.pager.TotalPages < 1 {
		v.pager.TotalPages = 1
	}
	if v.pager.Page >= v.pager.TotalPages {
		v.pager.Page = v.pager.TotalPages - 1
	}

	v.page = tabular.Paginate(sorted, tabular.PageSpec{Index: v.pager.Page, Size: v.pager.PerPage})

	cols := make([]table.Column, len(v.columns))
	for i, c := range v.columns {
		title := c
		if c == v.sort.Field {
			title += " " + arrow(v.sort.Direction)
		}
		width := lipgloss.Width(title)
		for _, r := range v.rows {
			width = max(width, lipgloss.Width(cell(r.rec, c)))
		}
		cols[i] = table.Column{Title: title, Width: min(width, maxColumnWidth)}
	}

	rows := make([]table.Row, len(v.page))
	for i, r := range v.page {
		cells := make(table.Row, len(v.columns))
		for j, c := range v.columns {
			cells[j] = cell(r.rec, c)
		}
		rows[i] = cells
	}

	// SetRows(nil) moves the cursor to -1, so restore it once rows are back.
	cursor := v.table.Cursor()
	v.table.SetRows(nil)
	v.table.SetColumns(cols)
	v.table.SetRows(rows)
	if len(rows) > 0 {
		v.table.SetCursor(min(max(cursor, 0), len(rows)-1))
	}
}

// Cursor returns the selected row index within the current page, or -1
// when the page is empty.
func (v *TableView) Cursor() int {
	if len(v.page) == 0 {
		return -1
	}
	return v.table.Cursor()
}

// View renders the table, the page dots and a summary footer.
func (v *TableView) View() string {
	if len(v.rows) == 0 {
		return styles.MutedStyle.Render("No records")
	}

	summary := fmt.Sprintf("Page %d of %d · %s records · sorted by %s %s",
		v.pager.Page+1,
		v.pager.TotalPages,
		humanize.Comma(int64(len(v.rows))),
		v.sort.Field,
		arrow(v.sort.Direction),
	)

	return strings.Join([]string{
		v.table.View(),
		v.pager.View(),
		styles.FooterStyle.Render(summary),
	}, "\n")
}

func cell(rec dataset.Record, column string) string {
	return tabular.Format(tabular.Lookup(rec, column))
}

func arrow(d tabular.Direction) string {
	if d == tabular.Descending {
		return "▼"
	}
	return "▲"
}
