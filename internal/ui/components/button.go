package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammarjourney/internal/ui/theme"
)

var (
	buttonActive = lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Text).
			Bold(true).
			Padding(0, 2)

	buttonInactive = lipgloss.NewStyle().
			Background(theme.BgCard).
			Foreground(theme.TextDim).
			Padding(0, 2)
)

// Button is an action label with the key that triggers it. Inactive
// buttons render dimmed.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + label
	}
	if b.Active {
		return buttonActive.Render("▸ " + label)
	}
	return buttonInactive.Render("  " + label)
}
