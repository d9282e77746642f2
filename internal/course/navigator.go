// Package course moves the learner between the level map and levels.
package course

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/exercise"
	"github.com/abhisek/grammarjourney/internal/level"
	"github.com/abhisek/grammarjourney/internal/progress"
)

// Mode is what the learner is looking at.
type Mode int

const (
	ModeMap Mode = iota
	ModeLearning
)

func (m Mode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeLearning:
		return "learning"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Entry is one row of the level map.
type Entry struct {
	Index int
	Level catalog.Level
	State progress.LevelState
}

// Navigator is the only writer of progress. It owns the selected level and
// its runner while in learning mode.
type Navigator struct {
	catalog *catalog.Catalog
	tracker *progress.Tracker
	shuffle exercise.Shuffler
	logger  zerolog.Logger

	mode     Mode
	selected int
	runner   *level.Runner
}

// New returns a navigator in map mode.
func New(cat *catalog.Catalog, tracker *progress.Tracker, shuffle exercise.Shuffler, logger zerolog.Logger) *Navigator {
	return &Navigator{
		catalog:  cat,
		tracker:  tracker,
		shuffle:  shuffle,
		logger:   logger,
		mode:     ModeMap,
		selected: -1,
	}
}

// Mode returns the current mode.
func (n *Navigator) Mode() Mode { return n.mode }

// SelectedLevel returns the 0-based index of the level being played, or -1
// before any selection.
func (n *Navigator) SelectedLevel() int { return n.selected }

// Runner returns the active level runner, or nil in map mode.
func (n *Navigator) Runner() *level.Runner {
	if n.mode != ModeLearning {
		return nil
	}
	return n.runner
}

// Catalog returns the course being navigated.
func (n *Navigator) Catalog() *catalog.Catalog { return n.catalog }

// Tracker returns the progress tracker.
func (n *Navigator) Tracker() *progress.Tracker { return n.tracker }

// Logger returns the logger screens share with the navigator.
func (n *Navigator) Logger() zerolog.Logger { return n.logger }

// Entries returns the map rows with their lock state.
func (n *Navigator) Entries() []Entry {
	entries := make([]Entry, len(n.catalog.Levels))
	for i, lvl := range n.catalog.Levels {
		entries[i] = Entry{Index: i, Level: lvl, State: n.tracker.State(i)}
	}
	return entries
}

// SelectLevel enters the level at index, starting from its first question.
func (n *Navigator) SelectLevel(index int) error {
	if index < 0 || index >= n.catalog.Len() {
		return exercise.Reject("select level", fmt.Sprintf("no level at index %d", index))
	}
	if !n.tracker.IsUnlocked(index) {
		return exercise.Reject("select level", fmt.Sprintf("level %d is locked", index+1))
	}
	return n.enter(index)
}

func (n *Navigator) enter(index int) error {
	r, err := level.New(n.catalog.Levels[index], n.shuffle)
	if err != nil {
		return err
	}
	n.selected = index
	n.runner = r
	n.mode = ModeLearning
	n.logger.Debug().
		Str("run_id", r.RunID()).
		Int("level_id", index+1).
		Msg("level started")
	return nil
}

// Advance moves the active runner past a solved question and handles level
// completion.
func (n *Navigator) Advance(ctx context.Context) (level.Outcome, error) {
	r := n.Runner()
	if r == nil {
		return 0, exercise.Reject("advance", "no level in progress")
	}
	outcome, err := r.Advance()
	if err != nil {
		return 0, err
	}
	if outcome == level.OutcomeLevelComplete {
		if err := n.OnLevelComplete(ctx); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// OnLevelComplete marks the selected level completed, then enters the next
// level if one remains, otherwise returns to the map.
func (n *Navigator) OnLevelComplete(ctx context.Context) error {
	if n.mode != ModeLearning {
		return exercise.Reject("complete level", "no level in progress")
	}
	levelID := n.selected + 1
	n.tracker.MarkCompleted(ctx, levelID)
	n.logger.Info().
		Str("run_id", n.runner.RunID()).
		Int("level_id", levelID).
		Int("completed", n.tracker.CompletedCount()).
		Msg("level finished")

	next := n.selected + 1
	if next < n.catalog.Len() && n.tracker.IsUnlocked(next) {
		if err := n.enter(next); err != nil {
			n.BackToMap()
			return err
		}
		return nil
	}
	n.BackToMap()
	return nil
}

// BackToMap leaves the current level without recording progress.
func (n *Navigator) BackToMap() {
	if n.mode == ModeLearning && n.runner != nil && !n.runner.Done() {
		n.logger.Debug().
			Str("run_id", n.runner.RunID()).
			Int("level_id", n.selected+1).
			Int("question", n.runner.QuestionIndex()+1).
			Msg("level left")
	}
	n.mode = ModeMap
	n.runner = nil
}
