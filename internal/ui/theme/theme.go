package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammarjourney/internal/catalog"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Word tile colors, one per part of speech.
var (
	Noun      = lipgloss.Color("#3B82F6") // Blue
	Verb      = lipgloss.Color("#EF4444") // Red
	Adjective = lipgloss.Color("#22C55E") // Green
	OtherWord = lipgloss.Color("#CBD5E1") // Light Slate
)

// WordColor returns the tile background for a word type.
func WordColor(t catalog.WordType) color.Color {
	switch t {
	case catalog.WordNoun:
		return Noun
	case catalog.WordVerb:
		return Verb
	case catalog.WordAdj:
		return Adjective
	default:
		return OtherWord
	}
}

// WordTextColor returns a readable foreground for a tile of type t.
func WordTextColor(t catalog.WordType) color.Color {
	if t == catalog.WordOther || t == "" {
		return BgDark
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
