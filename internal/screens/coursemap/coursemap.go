// Package coursemap renders the level list and starts levels.
package coursemap

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammarjourney/internal/course"
	"github.com/abhisek/grammarjourney/internal/progress"
	"github.com/abhisek/grammarjourney/internal/router"
	"github.com/abhisek/grammarjourney/internal/screen"
	"github.com/abhisek/grammarjourney/internal/screens/exercise"
	"github.com/abhisek/grammarjourney/internal/ui/components"
	"github.com/abhisek/grammarjourney/internal/ui/layout"
	"github.com/abhisek/grammarjourney/internal/ui/theme"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "Play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Quit"),
		),
	}
}

// CourseMapScreen lists levels with their lock state. Lock state always
// comes from the navigator's tracker.
type CourseMapScreen struct {
	ctx    context.Context
	nav    *course.Navigator
	keys   keyMap
	cursor int
	notice string
}

var _ screen.Screen = (*CourseMapScreen)(nil)

// New creates the course map with the cursor on the first level that is
// unlocked but not completed.
func New(ctx context.Context, nav *course.Navigator) *CourseMapScreen {
	s := &CourseMapScreen{ctx: ctx, nav: nav, keys: newKeyMap()}
	for _, e := range nav.Entries() {
		if e.State == progress.LevelCurrent {
			s.cursor = e.Index
			break
		}
	}
	return s
}

func (s *CourseMapScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, s.keys.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, s.keys.Select):
		return s, s.selectLevel()
	}
	return s, nil
}

func (s *CourseMapScreen) View(width, height int) string {
	cat := s.nav.Catalog()
	tr := s.nav.Tracker()
	entries := s.nav.Entries()

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(cat.Title))
	b.WriteString("\n")
	if cat.Tagline != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(cat.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar(
		"",
		tr.Mastery(len(entries)),
		fmt.Sprintf("%d / %d Mastery", tr.CompletedCount(), len(entries)),
		barWidth,
	)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	for _, e := range entries {
		b.WriteString(s.renderRow(e, e.Index == s.cursor, width))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + s.notice))
	}
	if !tr.Persistent() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Progress is not being saved this session."))
	}

	return b.String()
}

func (s *CourseMapScreen) Title() string {
	return "Course Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *CourseMapScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(s.keys.Up, s.keys.Select, s.keys.Quit)
}

// Cursor returns the highlighted level index.
func (s *CourseMapScreen) Cursor() int {
	return s.cursor
}

func (s *CourseMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	if next >= 0 && next < s.nav.Catalog().Len() {
		s.cursor = next
		s.notice = ""
	}
}

// selectLevel enters the highlighted level if it is unlocked.
func (s *CourseMapScreen) selectLevel() tea.Cmd {
	if s.nav.Tracker().State(s.cursor) == progress.LevelLocked {
		s.notice = fmt.Sprintf("Level %d is locked. Complete the level before it first.", s.cursor+1)
		return nil
	}
	if err := s.nav.SelectLevel(s.cursor); err != nil {
		logger := s.nav.Logger()
		logger.Warn().Err(err).Int("level_id", s.cursor+1).Msg("level could not start")
		s.notice = fmt.Sprintf("Level %d could not be started.", s.cursor+1)
		return nil
	}
	s.notice = ""
	ex := exercise.New(s.ctx, s.nav)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ex}
	}
}

// renderRow renders a single level row.
func (s *CourseMapScreen) renderRow(e course.Entry, selected bool, width int) string {
	icon := e.State.Icon()
	label := e.State.Label()
	words := fmt.Sprintf("%d words", e.Level.WordCount())

	padding := 4
	iconWidth := 3
	wordsWidth := 10
	labelWidth := 10
	spacing := 8
	nameWidth := width - padding - iconWidth - wordsWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := fmt.Sprintf("%d. %s", e.Index+1, e.Level.Title)
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-1]) + "…"
	}

	var nameStyle, dimStyle, labelStyle lipgloss.Style
	switch {
	case selected && e.State != progress.LevelLocked:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dimStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case e.State == progress.LevelCompleted:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case e.State == progress.LevelCurrent:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		dimStyle = nameStyle
		labelStyle = nameStyle
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		dimStyle.Render(fmt.Sprintf("%*s", wordsWidth, words)),
		labelStyle.Render(fmt.Sprintf("%*s", labelWidth, label)),
	)
}
