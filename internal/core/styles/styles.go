// Package styles holds the lipgloss styles shared by the terminal views and
// CLI output. Call SetTheme to switch palettes.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/uikit/internal/core/notify"
)

// Severity icons.
const (
	IconInfo    = "ℹ"
	IconSuccess = "✓"
	IconWarning = "⚠"
	IconError   = "✗"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// Snackbar styles, one per severity.
	SnackbarInfoStyle    lipgloss.Style
	SnackbarSuccessStyle lipgloss.Style
	SnackbarWarningStyle lipgloss.Style
	SnackbarErrorStyle   lipgloss.Style
	// SnackbarClosingStyle is applied while a notification plays its exit
	// transition.
	SnackbarClosingStyle lipgloss.Style
	SnackbarActionStyle  lipgloss.Style

	TitleStyle         lipgloss.Style
	TableHeaderStyle   lipgloss.Style
	TableCellStyle     lipgloss.Style
	TableSelectedStyle lipgloss.Style
	TableBorderStyle   lipgloss.Style
	FooterStyle        lipgloss.Style
	MutedStyle         lipgloss.Style

	ValidStyle   lipgloss.Style
	InvalidStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	snackbar := func(accent lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(p.Foreground).
			Padding(0, 1)
	}

	SnackbarInfoStyle = snackbar(p.Primary)
	SnackbarSuccessStyle = snackbar(p.Success)
	SnackbarWarningStyle = snackbar(p.Warning)
	SnackbarErrorStyle = snackbar(p.Error)
	SnackbarClosingStyle = snackbar(p.Muted).Foreground(p.Muted)
	SnackbarActionStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(0, 1)
	TableCellStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Surface).
		Bold(true)
	TableBorderStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	FooterStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ValidStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	InvalidStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
}

// ForSeverity returns the snackbar style and icon for a severity.
func ForSeverity(s notify.Severity) (lipgloss.Style, string) {
	switch s.Resolve() {
	case notify.SeveritySuccess:
		return SnackbarSuccessStyle, IconSuccess
	case notify.SeverityWarning:
		return SnackbarWarningStyle, IconWarning
	case notify.SeverityError:
		return SnackbarErrorStyle, IconError
	default:
		return SnackbarInfoStyle, IconInfo
	}
}

func init() {
	SetTheme(themes[DefaultTheme])
}
