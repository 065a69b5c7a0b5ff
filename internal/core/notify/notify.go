// Package notify defines the notification types shared by the sequencer and
// the views that render it.
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Severity represents how a notification is presented.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Resolve returns the severity to display. Empty resolves to info.
func (s Severity) Resolve() Severity {
	if s == "" {
		return SeverityInfo
	}
	return s
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Vertical anchor of a notification.
type Vertical string

const (
	Top    Vertical = "top"
	Bottom Vertical = "bottom"
)

// Horizontal anchor of a notification.
type Horizontal string

const (
	Left   Horizontal = "left"
	Center Horizontal = "center"
	Right  Horizontal = "right"
)

// Position places a notification on screen.
type Position struct {
	Vertical   Vertical   `yaml:"vertical"`
	Horizontal Horizontal `yaml:"horizontal"`
}

// Resolve fills unset anchors with bottom/left.
func (p Position) Resolve() Position {
	if p.Vertical == "" {
		p.Vertical = Bottom
	}
	if p.Horizontal == "" {
		p.Horizontal = Left
	}
	return p
}

// Validate checks that both anchors are known or empty.
func (p Position) Validate() error {
	switch p.Vertical {
	case "", Top, Bottom:
	default:
		return fmt.Errorf("invalid vertical anchor %q", p.Vertical)
	}
	switch p.Horizontal {
	case "", Left, Center, Right:
	default:
		return fmt.Errorf("invalid horizontal anchor %q", p.Horizontal)
	}
	return nil
}

// Action is an interactive control attached to a notification, such as an
// "Undo" button. Payload is interpreted only by whoever handles the action.
type Action struct {
	Label   string
	Key     string
	Payload any
}

// Request describes a notification to show.
type Request struct {
	// Message is the display payload. Use Text to render it.
	Message  any
	Severity Severity
	// AutoHide is how long the notification stays visible. Zero uses the
	// sequencer default; negative disables auto-hide.
	AutoHide time.Duration
	Position Position
	Action   *Action
}

// Queued is a Request that has been accepted by a sequencer.
type Queued struct {
	Request
	Key        uint64
	EnqueuedAt time.Time
}

// Text renders an opaque message payload for display.
func Text(message any) string {
	switch m := message.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(m)
	}
}
