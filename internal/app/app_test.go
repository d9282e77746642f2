package app

import (
	"context"
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/course"
	"github.com/abhisek/grammarjourney/internal/progress"
	"github.com/abhisek/grammarjourney/internal/ui/layout"
)

func testModel(t *testing.T) (AppModel, *course.Navigator) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	tr := progress.NewTracker(context.Background(), nil, zerolog.Nop())
	nav := course.New(cat, tr, func(w []catalog.Word) { slices.Reverse(w) }, zerolog.Nop())
	m := newAppModel(context.Background(), Options{Navigator: nav, Logger: zerolog.Nop()})
	return m, nav
}

// step applies msg and runs any returned command once, feeding its message
// back in.
func step(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(AppModel)
		}
	}
	return m
}

func TestApp_EnterStartsLevelAndEscReturns(t *testing.T) {
	m, nav := testModel(t)

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.router.Depth() != 2 {
		t.Fatalf("expected exercise screen pushed, depth %d", m.router.Depth())
	}
	if nav.Mode() != course.ModeLearning {
		t.Fatalf("expected learning mode, got %v", nav.Mode())
	}

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("expected back on the map, depth %d", m.router.Depth())
	}
	if nav.Mode() != course.ModeMap {
		t.Errorf("expected map mode after esc, got %v", nav.Mode())
	}
}

func TestApp_EscOnMapIsNoop(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command for esc on the root screen")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_ViewFrame(t *testing.T) {
	m, _ := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.render()
	for _, want := range []string{"Grammar Journey", "Course Map", "0/5", "Enter"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in frame", want)
		}
	}
}

func TestApp_ViewTooSmall(t *testing.T) {
	m, _ := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected too-small message")
	}
}

func TestApp_ExerciseFitsMinimumSize(t *testing.T) {
	sizes := []struct{ w, h int }{
		{layout.MinWidth, layout.MinHeight},
		{80, 24},
	}
	for _, sz := range sizes {
		m, nav := testModel(t)
		m = step(m, tea.WindowSizeMsg{Width: sz.w, Height: sz.h})
		m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
		m = step(m, tea.KeyPressMsg{Code: 'h', Text: "h"})
		m = step(m, tea.KeyPressMsg{Code: 'g', Text: "g"})

		sess := nav.Runner().Session()
		if !sess.HintVisible() || !sess.ExplanationVisible() {
			t.Fatalf("%dx%d: expected hint and explanation visible", sz.w, sz.h)
		}

		out := m.render()
		if h := lipgloss.Height(out); h > sz.h {
			t.Errorf("%dx%d: frame is %d rows tall", sz.w, sz.h, h)
		}
		if !strings.Contains(out, "Map") {
			t.Errorf("%dx%d: footer hints pushed off screen", sz.w, sz.h)
		}
	}
}
