package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/pkg/tabular"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)
	}
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
snackbar:
  auto_hide: 1500ms
  position:
    vertical: top
table:
  page_size: 25
  sort_field: owner.name
  sort_direction: desc
  columns: [title, owner.name]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 1500*time.Millisecond, cfg.Snackbar.AutoHide)
	assert.Equal(t, 200*time.Millisecond, cfg.Snackbar.Transition, "unset key keeps default")
	assert.Equal(t, notify.Top, cfg.Snackbar.Position.Vertical)
	assert.Equal(t, notify.Right, cfg.Snackbar.Position.Horizontal)
	assert.Equal(t, 25, cfg.Table.PageSize)
	assert.Equal(t, []string{"title", "owner.name"}, cfg.Table.Columns)
	assert.Equal(t, tabular.SortSpec{Field: "owner.name", Direction: tabular.Descending}, cfg.Table.Sort())
}

func TestLoad_ZeroAutoHideDisables(t *testing.T) {
	path := writeConfig(t, "snackbar:\n  auto_hide: 0s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Snackbar.AutoHide)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "snackbar: [not, a, mapping]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	cfg.Snackbar.Transition = -time.Second
	cfg.Snackbar.Width = 5
	cfg.Snackbar.Position.Horizontal = "middle"
	cfg.Table.PageSize = 0
	cfg.Table.SortDirection = "up"

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 6)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{
		"theme",
		"snackbar.transition",
		"snackbar.width",
		"snackbar.position",
		"table.page_size",
		"table.sort_direction",
	}, fields)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfig(t, "table:\n  page_size: -1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
