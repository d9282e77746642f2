package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/ui/theme"
)

// Tile renders a word as a colored chip. Focused tiles are underlined and
// bracketed so the cursor is visible without color.
type Tile struct {
	Word    catalog.Word
	Focused bool
	Dimmed  bool
}

// View renders the tile.
func (t Tile) View() string {
	style := lipgloss.NewStyle().
		Background(theme.WordColor(t.Word.Type)).
		Foreground(theme.WordTextColor(t.Word.Type)).
		Bold(true).
		Padding(0, 1)
	if t.Dimmed {
		style = style.Background(theme.Border).Foreground(theme.TextDim)
	}
	if t.Focused {
		style = style.Underline(true)
		return "[" + style.Render(t.Word.Text) + "]"
	}
	return " " + style.Render(t.Word.Text) + " "
}

// TileRow lays out tiles left to right, wrapping at width.
func TileRow(tiles []Tile, width int) string {
	var lines []string
	var line string
	for _, t := range tiles {
		v := t.View()
		if line != "" && lipgloss.Width(line)+lipgloss.Width(v) > width {
			lines = append(lines, line)
			line = ""
		}
		line += v
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// EmptySlot renders a placeholder for the n-th (1-based) answer position.
func EmptySlot(n int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" ‹slot %d› ", n))
}

// Legend renders the word-type color key.
func Legend() string {
	var parts []string
	for _, t := range catalog.AllWordTypes() {
		if t == catalog.WordOther {
			continue
		}
		dot := lipgloss.NewStyle().Foreground(theme.WordColor(t)).Render("●")
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.ToUpper(t.Label()))
		parts = append(parts, dot+" "+label)
	}
	return strings.Join(parts, "   ")
}
