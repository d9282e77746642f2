// Package exercise is the sentence-building screen for one level.
package exercise

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammarjourney/internal/course"
	ex "github.com/abhisek/grammarjourney/internal/exercise"
	"github.com/abhisek/grammarjourney/internal/level"
	"github.com/abhisek/grammarjourney/internal/router"
	"github.com/abhisek/grammarjourney/internal/screen"
	"github.com/abhisek/grammarjourney/internal/ui/layout"
)

// row is the tile row holding keyboard focus.
type row int

const (
	rowBank row = iota
	rowAnswer
)

// ExerciseScreen drives the navigator's active level. All state changes go
// through the session, runner and navigator; the screen only keeps focus.
type ExerciseScreen struct {
	ctx  context.Context
	nav  *course.Navigator
	keys keyMap

	focus  row
	cursor int
	notice string
}

var (
	_ screen.Screen          = (*ExerciseScreen)(nil)
	_ screen.KeyHintProvider = (*ExerciseScreen)(nil)
	_ screen.Leaver          = (*ExerciseScreen)(nil)
)

// New creates the screen for the level the navigator just entered.
func New(ctx context.Context, nav *course.Navigator) *ExerciseScreen {
	s := &ExerciseScreen{ctx: ctx, nav: nav, keys: newKeyMap()}
	s.syncKeys()
	return s
}

func (s *ExerciseScreen) Init() tea.Cmd {
	return nil
}

func (s *ExerciseScreen) Title() string {
	if r := s.nav.Runner(); r != nil {
		return fmt.Sprintf("Level %d", s.nav.SelectedLevel()+1)
	}
	return "Exercise"
}

// Leave returns the navigator to the map without recording progress.
func (s *ExerciseScreen) Leave() {
	s.nav.BackToMap()
}

// KeyHints returns the key binding hints for the footer.
func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	k := s.keys
	return layout.HintsFromBindings(k.Move, k.SwitchRow, k.Toggle, k.Check, k.Hint, k.GiveUp, k.Next, k.Back)
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	r := s.nav.Runner()
	if r == nil {
		return s, popScreen
	}
	sess := r.Session()

	var cmd tea.Cmd
	switch {
	case key.Matches(kmsg, s.keys.Next):
		cmd = s.advance()
	case key.Matches(kmsg, s.keys.Left):
		s.moveCursor(-1)
	case key.Matches(kmsg, s.keys.Right):
		s.moveCursor(1)
	case key.Matches(kmsg, s.keys.SwitchRow):
		s.switchRow()
	case key.Matches(kmsg, s.keys.Toggle):
		s.toggleFocused(sess)
	case key.Matches(kmsg, s.keys.PlaceNth):
		s.placeNth(sess, int(kmsg.Code-'0'))
	case key.Matches(kmsg, s.keys.Check):
		if _, err := sess.CheckAnswer(); err != nil {
			s.rejected(err)
		} else {
			s.notice = ""
		}
	case key.Matches(kmsg, s.keys.Hint):
		s.rejected(sess.ToggleHint())
	case key.Matches(kmsg, s.keys.GiveUp):
		s.rejected(sess.GiveUp())
	case key.Matches(kmsg, s.keys.Restart):
		r.Restart()
		s.focus, s.cursor = rowBank, 0
	}

	s.clampFocus()
	s.syncKeys()
	return s, cmd
}

// advance moves past a solved question. Finishing the last level pops
// back to the map.
func (s *ExerciseScreen) advance() tea.Cmd {
	before := s.nav.SelectedLevel()
	outcome, err := s.nav.Advance(s.ctx)
	if err != nil {
		if s.nav.Runner() == nil {
			return popScreen
		}
		return nil
	}

	s.focus, s.cursor = rowBank, 0
	if s.nav.Mode() == course.ModeMap {
		return popScreen
	}
	if outcome == level.OutcomeLevelComplete {
		s.notice = fmt.Sprintf("Level %d complete! On to level %d.", before+1, s.nav.SelectedLevel()+1)
	} else {
		s.notice = ""
	}
	return nil
}

func (s *ExerciseScreen) toggleFocused(sess *ex.Session) {
	switch s.focus {
	case rowBank:
		pool := sess.Pool()
		if s.cursor < len(pool) {
			s.rejected(sess.SelectWord(pool[s.cursor].ID))
		}
	case rowAnswer:
		placed := sess.Placed()
		if s.cursor < len(placed) {
			s.rejected(sess.RemoveWord(placed[s.cursor].ID))
		}
	}
}

// placeNth places the n-th (1-based) bank tile.
func (s *ExerciseScreen) placeNth(sess *ex.Session, n int) {
	pool := sess.Pool()
	if n < 1 || n > len(pool) {
		return
	}
	s.rejected(sess.SelectWord(pool[n-1].ID))
}

// rejected logs a session operation the current state refused.
func (s *ExerciseScreen) rejected(err error) {
	if err == nil {
		return
	}
	logger := s.nav.Logger()
	logger.Debug().Err(err).Int("level_id", s.nav.SelectedLevel()+1).Msg("action rejected")
}

func (s *ExerciseScreen) moveCursor(delta int) {
	n := s.rowLen(s.focus)
	if n == 0 {
		return
	}
	s.cursor = (s.cursor + delta + n) % n
}

func (s *ExerciseScreen) switchRow() {
	if s.focus == rowBank {
		s.focus = rowAnswer
	} else {
		s.focus = rowBank
	}
	s.cursor = 0
}

// clampFocus keeps the cursor on an existing tile, moving focus to the
// other row when the focused one empties.
func (s *ExerciseScreen) clampFocus() {
	if s.rowLen(s.focus) == 0 {
		other := rowAnswer
		if s.focus == rowAnswer {
			other = rowBank
		}
		if s.rowLen(other) > 0 {
			s.focus = other
			s.cursor = 0
			return
		}
	}
	if n := s.rowLen(s.focus); s.cursor >= n {
		s.cursor = max(0, n-1)
	}
}

func (s *ExerciseScreen) rowLen(r row) int {
	runner := s.nav.Runner()
	if runner == nil {
		return 0
	}
	if r == rowBank {
		return len(runner.Session().Pool())
	}
	return len(runner.Session().Placed())
}

// syncKeys enables only the actions the session currently accepts.
func (s *ExerciseScreen) syncKeys() {
	r := s.nav.Runner()
	if r == nil {
		return
	}
	sess := r.Session()
	done := sess.Complete()

	s.keys.Check.SetEnabled(sess.CanCheck())
	s.keys.Next.SetEnabled(done)
	s.keys.Hint.SetEnabled(!done)
	s.keys.GiveUp.SetEnabled(!done)
	s.keys.Toggle.SetEnabled(!done)
	s.keys.PlaceNth.SetEnabled(!done)
	s.keys.Move.SetEnabled(!done)
	s.keys.Left.SetEnabled(!done)
	s.keys.Right.SetEnabled(!done)
	s.keys.SwitchRow.SetEnabled(!done)
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}
