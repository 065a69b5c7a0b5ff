package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/internal/core/config"
	"github.com/colonyops/uikit/internal/core/dataset"
	"github.com/colonyops/uikit/pkg/tuitest"
)

func tableRecords() []dataset.Record {
	return []dataset.Record{
		{"name": "Bea", "owner": map[string]any{"team": "core"}},
		{"name": "al", "owner": map[string]any{"team": nil}},
		{"name": "Cy", "owner": map[string]any{"team": "apps"}},
	}
}

func newTableCmd(t *testing.T) *TableCmd {
	t.Helper()
	cfg := config.DefaultConfig()
	return &TableCmd{flags: &Flags{Config: &cfg}, page: 1}
}

func TestTableCmd_Paginate(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.sortBy = "owner.team"
	cmd.pageSize = 2

	page, err := cmd.paginate(tableRecords())
	require.NoError(t, err)

	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "asc", page.Order)
	assert.Equal(t, []string{"name", "owner.team"}, page.Columns)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "Cy", page.Records[0]["name"])
	assert.Equal(t, "Bea", page.Records[1]["name"])

	cmd.page = 2
	page, err = cmd.paginate(tableRecords())
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "al", page.Records[0]["name"], "missing team sorts last")
}

func TestTableCmd_PaginateDescending(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.desc = true

	page, err := cmd.paginate(tableRecords())
	require.NoError(t, err)

	assert.Equal(t, "name", page.Sort, "defaults to the first column")
	assert.Equal(t, "desc", page.Order)

	var names []any
	for _, r := range page.Records {
		names = append(names, r["name"])
	}
	assert.Equal(t, []any{"Cy", "Bea", "al"}, names)
}

func TestTableCmd_PaginateOutOfRange(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.page = 9

	page, err := cmd.paginate(tableRecords())
	require.NoError(t, err)
	assert.Empty(t, page.Records)
}

func TestTableCmd_PaginateRejectsBadInput(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.page = 0
	_, err := cmd.paginate(tableRecords())
	assert.Error(t, err)

	cmd = newTableCmd(t)
	cmd.pageSize = -1
	_, err = cmd.paginate(tableRecords())
	assert.Error(t, err)
}

func TestRenderPage(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.sortBy = "owner.team"

	page, err := cmd.paginate(tableRecords())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderPage(&buf, page))

	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "owner.team ▲")
	assert.Contains(t, out, "apps")
	assert.Contains(t, out, "Page 1 of 1 · 3 records")
}

func TestWriteLines(t *testing.T) {
	cmd := newTableCmd(t)
	cmd.pageSize = 2

	page, err := cmd.paginate(tableRecords())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeLines(&buf, page))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`{"name":"al","owner":{"team":null}}`,
		`{"name":"Bea","owner":{"team":"core"}}`,
	}, lines)
}
