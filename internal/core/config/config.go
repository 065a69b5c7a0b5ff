// Package config handles configuration loading and validation for uikit.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/core/styles"
	"github.com/colonyops/uikit/pkg/tabular"
)

// Config holds the application configuration.
type Config struct {
	Theme    string         `yaml:"theme"`
	Snackbar SnackbarConfig `yaml:"snackbar"`
	Table    TableConfig    `yaml:"table"`
}

// SnackbarConfig controls notification presentation.
type SnackbarConfig struct {
	// AutoHide applies to notifications that do not set their own duration.
	// Zero disables the default.
	AutoHide time.Duration `yaml:"auto_hide"`
	// Transition is how long a closing notification stays on screen before
	// the slot is released.
	Transition time.Duration   `yaml:"transition"`
	Width      int             `yaml:"width"`
	Position   notify.Position `yaml:"position"`
}

// TableConfig controls table views.
type TableConfig struct {
	PageSize      int      `yaml:"page_size"`
	SortField     string   `yaml:"sort_field"`
	SortDirection string   `yaml:"sort_direction"`
	Columns       []string `yaml:"columns"` // empty = inferred from records
}

// Sort returns the configured default sort.
func (t TableConfig) Sort() tabular.SortSpec {
	dir, _ := tabular.ParseDirection(t.SortDirection)
	return tabular.SortSpec{Field: t.SortField, Direction: dir}
}

const minSnackbarWidth = 20

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    styles.DefaultTheme,
		Snackbar: SnackbarConfig{
			AutoHide:   4 * time.Second,
			Transition: 200 * time.Millisecond,
			Width:      48,
			Position:   notify.Position{Vertical: notify.Bottom, Horizontal: notify.Right},
		},
		Table: TableConfig{
			PageSize:      10,
			SortDirection: "asc",
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned. Keys absent from the file keep their
// default values.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, func(name string) error {
			if _, ok := styles.GetPalette(name); !ok {
				return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
			}
			return nil
		}),
		criterio.Run("snackbar.auto_hide", c.Snackbar.AutoHide, nonNegative),
		criterio.Run("snackbar.transition", c.Snackbar.Transition, nonNegative),
		criterio.Run("snackbar.width", c.Snackbar.Width, func(w int) error {
			if w < minSnackbarWidth {
				return fmt.Errorf("must be at least %d", minSnackbarWidth)
			}
			return nil
		}),
		criterio.Run("snackbar.position", c.Snackbar.Position, notify.Position.Validate),
		criterio.Run("table.page_size", c.Table.PageSize, func(n int) error {
			if n < 1 {
				return fmt.Errorf("must be at least 1")
			}
			return nil
		}),
		criterio.Run("table.sort_direction", c.Table.SortDirection, func(s string) error {
			_, err := tabular.ParseDirection(s)
			return err
		}),
	)
}

func nonNegative(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}
