// Package logging provides component-scoped zerolog loggers.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier derived from
// the global logger. Uses the "cmp" key for consistency with zerolog
// conventions.
func Component(name string) zerolog.Logger {
	return ComponentOf(log.Logger, name)
}

// ComponentOf tags parent with a component identifier.
func ComponentOf(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("cmp", name).Logger()
}
