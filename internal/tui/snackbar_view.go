package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/core/snackbar"
	"github.com/colonyops/uikit/internal/core/styles"
)

// SnackbarView renders the sequencer's current notification.
type SnackbarView struct {
	width    int
	position notify.Position
}

// NewSnackbarView creates a view that renders notifications width cells wide.
// Notifications without a position use position.
func NewSnackbarView(width int, position notify.Position) *SnackbarView {
	return &SnackbarView{width: width, position: position}
}

// Render returns the notification box, or "" when the slot is empty. A
// notification that is closing renders dimmed until its transition ends.
func (v *SnackbarView) Render(st snackbar.State) string {
	if st.Current == nil {
		return ""
	}

	style, icon := styles.ForSeverity(st.Current.Severity)
	if !st.Visible {
		style = styles.SnackbarClosingStyle
	}

	content := icon + " " + notify.Text(st.Current.Message)
	if a := st.Current.Action; a != nil && st.Visible {
		content += "  " + styles.SnackbarActionStyle.Render("["+a.Key+"] "+a.Label)
	}

	return style.Width(v.width).Render(content)
}

// Place attaches the notification to body at its anchor: above or below,
// aligned left, center or right within width.
func (v *SnackbarView) Place(body string, st snackbar.State, width int) string {
	box := v.Render(st)
	if box == "" {
		return body
	}

	pos := v.positionFor(st.Current)

	align := lipgloss.Left
	switch pos.Horizontal {
	case notify.Center:
		align = lipgloss.Center
	case notify.Right:
		align = lipgloss.Right
	}
	line := lipgloss.PlaceHorizontal(max(width, lipgloss.Width(box)), align, box)

	if pos.Vertical == notify.Top {
		return lipgloss.JoinVertical(lipgloss.Left, line, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, line)
}

func (v *SnackbarView) positionFor(q *notify.Queued) notify.Position {
	if q.Position == (notify.Position{}) {
		return v.position.Resolve()
	}
	return q.Position.Resolve()
}
