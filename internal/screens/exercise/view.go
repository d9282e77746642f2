package exercise

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/grammarjourney/internal/exercise"
	"github.com/abhisek/grammarjourney/internal/ui/components"
	"github.com/abhisek/grammarjourney/internal/ui/theme"
)

// View renders the board. If the full layout is taller than height, a
// compact layout without section labels or legend is used instead.
func (s *ExerciseScreen) View(width, height int) string {
	if s.nav.Runner() == nil {
		return ""
	}
	out := s.board(width, false)
	if lipgloss.Height(out) > height {
		out = s.board(width, true)
	}
	return out
}

func (s *ExerciseScreen) board(width int, compact bool) string {
	r := s.nav.Runner()
	sess := r.Session()
	st := sess.Snapshot()
	q := sess.Question()
	lvl := r.Level()
	inner := max(width-4, 10)

	var b strings.Builder
	gap := func() {
		if !compact {
			b.WriteString("\n")
		}
	}

	// Level info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d: %s", s.nav.SelectedLevel()+1, lvl.Title))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", r.QuestionIndex()+1, r.QuestionCount()))
	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	if !compact {
		b.WriteString("  ")
		b.WriteString(components.NewProgressBar("", r.Progress(), "", inner).View())
		b.WriteString("\n")
	}
	gap()

	if s.notice != "" {
		b.WriteString(center(width, theme.Correct.Render(s.notice)))
		b.WriteString("\n")
		gap()
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("REBUILD THE SENTENCE")
	source := theme.Hint.Render(fmt.Sprintf("%q", q.Source))
	if compact {
		b.WriteString(center(width, heading+"  "+source))
	} else {
		b.WriteString(center(width, heading))
		b.WriteString("\n")
		b.WriteString(center(width, source))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answer row.
	if !compact {
		b.WriteString(sectionLabel("Your sentence"))
		b.WriteString("\n")
	}
	b.WriteString(s.renderAnswer(st, len(q.Words), inner))
	b.WriteString("\n")
	gap()

	// Word bank.
	if !compact {
		b.WriteString(sectionLabel("Word bank"))
		b.WriteString("\n")
	}
	b.WriteString(s.renderBank(st, inner))
	b.WriteString("\n")
	gap()

	if !compact {
		b.WriteString("  ")
		b.WriteString(components.Legend())
		b.WriteString("\n\n")
	}

	if status := renderStatus(st); status != "" {
		b.WriteString(center(width, status))
		b.WriteString("\n")
	}

	if st.HintVisible && q.Hint != "" {
		if compact {
			b.WriteString(inline("Hint", q.Hint, inner, theme.Accent))
		} else {
			b.WriteString(panel("Hint", q.Hint, inner, theme.Accent))
		}
		b.WriteString("\n")
	}
	if st.ExplanationVisible {
		if compact {
			b.WriteString(inline("Answer", q.Solution(), inner, theme.Success))
			b.WriteString("\n")
			if q.Explanation != "" {
				b.WriteString(indent(lipgloss.NewStyle().Width(inner).Render(theme.Body.Render(q.Explanation))))
				b.WriteString("\n")
			}
		} else {
			body := q.Solution()
			if q.Explanation != "" {
				body += "\n\n" + q.Explanation
			}
			b.WriteString(panel("Why it works", body, inner, theme.Success))
			b.WriteString("\n")
		}
	}

	buttons := []string{
		components.NewButton("Check", "c", sess.CanCheck()).View(),
		components.NewButton("Next", "n", sess.Complete()).View(),
	}
	b.WriteString(center(width, strings.Join(buttons, "  ")))

	return b.String()
}

func (s *ExerciseScreen) renderAnswer(st ex.State, total, width int) string {
	tiles := make([]components.Tile, len(st.Placed))
	for i, w := range st.Placed {
		tiles[i] = components.Tile{
			Word:    w,
			Focused: s.focus == rowAnswer && i == s.cursor && st.Status != ex.StatusCorrect,
		}
	}
	out := components.TileRow(tiles, width)

	var slots []string
	for n := len(st.Placed) + 1; n <= total; n++ {
		slots = append(slots, components.EmptySlot(n))
	}
	if len(slots) > 0 {
		if out != "" {
			out += " "
		}
		out += strings.Join(slots, "")
	}
	return indent(out)
}

func (s *ExerciseScreen) renderBank(st ex.State, width int) string {
	if len(st.Pool) == 0 {
		return indent(theme.Hint.Render("All words placed."))
	}
	tiles := make([]components.Tile, len(st.Pool))
	for i, w := range st.Pool {
		tiles[i] = components.Tile{
			Word:    w,
			Focused: s.focus == rowBank && i == s.cursor,
		}
	}
	return indent(components.TileRow(tiles, width))
}

func renderStatus(st ex.State) string {
	switch {
	case st.Status == ex.StatusIncorrect:
		return theme.Incorrect.Render("✗ Try again!")
	case st.Status == ex.StatusCorrect && st.GaveUp:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Here is the answer.")
	case st.Status == ex.StatusCorrect:
		return theme.Correct.Render("✓ Correct!")
	default:
		return ""
	}
}

func panel(title, body string, width int, accent color.Color) string {
	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return indent(theme.Card.
		BorderForeground(accent).
		Width(width).
		Render(heading + "\n" + theme.Body.Render(body)))
}

// inline renders a titled note on as few lines as width allows.
func inline(title, body string, width int, accent color.Color) string {
	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title + ":")
	return indent(lipgloss.NewStyle().Width(width).Render(heading + " " + theme.Body.Render(body)))
}

func sectionLabel(s string) string {
	return "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.ToUpper(s))
}

func center(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
