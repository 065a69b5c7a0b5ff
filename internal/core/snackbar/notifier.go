package snackbar

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/uikit/internal/core/notify"
)

// Enqueuer accepts notification requests.
type Enqueuer interface {
	Enqueue(req notify.Request) uint64
}

// Notifier is a convenience front for an Enqueuer. Application code uses it
// to report outcomes, including failures of notification actions.
type Notifier struct {
	target   Enqueuer
	position notify.Position
	log      zerolog.Logger
}

// NewNotifier creates a Notifier that publishes to target. Requests without
// a position inherit position.
func NewNotifier(target Enqueuer, position notify.Position, logger zerolog.Logger) *Notifier {
	return &Notifier{target: target, position: position, log: logger}
}

// Publish enqueues req and returns its key.
func (n *Notifier) Publish(req notify.Request) uint64 {
	if req.Position == (notify.Position{}) {
		req.Position = n.position
	}

	key := n.target.Enqueue(req)
	n.log.Debug().
		Uint64("key", key).
		Str("severity", string(req.Severity.Resolve())).
		Str("message", notify.Text(req.Message)).
		Msg("notification published")
	return key
}

// Infof publishes an info-level notification.
func (n *Notifier) Infof(format string, args ...any) uint64 {
	return n.publishf(notify.SeverityInfo, format, args...)
}

// Successf publishes a success-level notification.
func (n *Notifier) Successf(format string, args ...any) uint64 {
	return n.publishf(notify.SeveritySuccess, format, args...)
}

// Warnf publishes a warning-level notification.
func (n *Notifier) Warnf(format string, args ...any) uint64 {
	return n.publishf(notify.SeverityWarning, format, args...)
}

// Errorf publishes an error-level notification.
func (n *Notifier) Errorf(format string, args ...any) uint64 {
	return n.publishf(notify.SeverityError, format, args...)
}

// Error publishes err as an error-level notification. A nil error publishes
// nothing and returns 0.
func (n *Notifier) Error(err error) uint64 {
	if err == nil {
		return 0
	}
	n.log.Error().Err(err).Msg("surfacing error as notification")
	return n.Publish(notify.Request{Message: err, Severity: notify.SeverityError})
}

func (n *Notifier) publishf(sev notify.Severity, format string, args ...any) uint64 {
	return n.Publish(notify.Request{
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	})
}
