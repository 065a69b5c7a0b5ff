package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type owner struct {
	FullName string `json:"full_name"`
	Email    string `yaml:"mail"`
	Team     *team
	secret   string
}

type team struct {
	Name string
}

type meeting struct {
	Title     string
	Owner     owner
	Attendees []string
	Labels    map[string]string
}

func TestLookup(t *testing.T) {
	m := meeting{
		Title:     "Standup",
		Owner:     owner{FullName: "Ada", Email: "ada@example.com", Team: &team{Name: "core"}, secret: "x"},
		Attendees: []string{"ada", "bob"},
		Labels:    map[string]string{"room": "4b"},
	}
	dynamic := map[string]any{
		"owner": map[string]any{"name": "Bob", "tags": []any{"a", map[string]any{"deep": 7}}},
		"count": 3,
	}

	tests := []struct {
		name   string
		record any
		path   string
		want   any
	}{
		{name: "empty path returns record", record: 3, path: "", want: 3},
		{name: "struct field", record: m, path: "Title", want: "Standup"},
		{name: "struct through pointer", record: &m, path: "Title", want: "Standup"},
		{name: "nested struct via json tag", record: m, path: "Owner.full_name", want: "Ada"},
		{name: "nested struct via yaml tag", record: m, path: "Owner.mail", want: "ada@example.com"},
		{name: "case-insensitive field", record: m, path: "owner.team.name", want: "core"},
		{name: "slice index", record: m, path: "Attendees.1", want: "bob"},
		{name: "slice out of range", record: m, path: "Attendees.5", want: nil},
		{name: "typed map", record: m, path: "Labels.room", want: "4b"},
		{name: "unexported field hidden", record: m, path: "Owner.secret", want: nil},
		{name: "nested map", record: dynamic, path: "owner.name", want: "Bob"},
		{name: "map in slice", record: dynamic, path: "owner.tags.1.deep", want: 7},
		{name: "missing key", record: dynamic, path: "owner.age", want: nil},
		{name: "missing intermediate", record: dynamic, path: "manager.name", want: nil},
		{name: "through scalar", record: dynamic, path: "count.value", want: nil},
		{name: "nil record", record: nil, path: "a", want: nil},
		{name: "nil pointer field", record: meeting{}, path: "Owner.Team.Name", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.record, tt.path))
		})
	}
}
