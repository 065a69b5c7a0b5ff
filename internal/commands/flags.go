package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/uikit/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "uikit", "config.yaml")
}

// loaded returns the loaded configuration, or defaults when the Before hook
// did not run.
func (f *Flags) loaded() config.Config {
	if f.Config == nil {
		return config.DefaultConfig()
	}
	return *f.Config
}
