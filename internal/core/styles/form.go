package styles

import (
	"github.com/charmbracelet/huh"
)

// FormTheme returns a huh theme in the active palette.
func FormTheme() *huh.Theme {
	p := CurrentPalette
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.Secondary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(p.Foreground)

	t.Blurred.Title = t.Blurred.Title.Foreground(p.Muted)
	t.Blurred.Description = t.Blurred.Description.Foreground(p.Muted)

	return t
}
