package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/pkg/tabular"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json array",
			file:    "records.json",
			content: `[{"name": "b", "owner": {"name": "x"}}, {"name": "a", "age": 5}]`,
		},
		{
			name:    "json lines",
			file:    "records.jsonl",
			content: "{\"name\": \"b\", \"owner\": {\"name\": \"x\"}}\n\n{\"name\": \"a\", \"age\": 5}\n",
		},
		{
			name: "yaml",
			file: "records.yaml",
			content: `
- name: b
  owner:
    name: x
- name: a
  age: 5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Len(t, records, 2)

			assert.Equal(t, "x", tabular.Lookup(records[0], "owner.name"))
			assert.Nil(t, tabular.Lookup(records[0], "age"))
			assert.Equal(t, 0, tabular.Compare(tabular.Lookup(records[1], "age"), 5))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "records.csv", "a,b"))
	require.ErrorContains(t, err, "unsupported dataset format")

	_, err = Load(writeFile(t, "records.jsonl", "{\"ok\": 1}\nnot json\n"))
	require.ErrorContains(t, err, "line 2")
}

func TestLoad_EmptyArray(t *testing.T) {
	records, err := Load(writeFile(t, "records.json", "[]"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestColumns(t *testing.T) {
	records := []Record{
		{"title": "a", "owner": map[string]any{"name": "x", "team": "y"}},
		{"title": "b", "room": "4B", "owner": map[string]any{"name": "z"}},
		{"title": "c", "tags": []any{"one"}, "meta": map[string]any{}},
	}

	assert.Equal(t, []string{"owner.name", "owner.team", "title", "room", "meta", "tags"}, Columns(records))
}

func TestSample(t *testing.T) {
	records := Sample()
	require.NotEmpty(t, records)
	assert.Contains(t, Columns(records), "owner.name")
}

func TestDecode_UsesNameForFormat(t *testing.T) {
	records, err := Decode(strings.NewReader("- a: 1\n"), "piped.yml")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0]["a"])
}
