package progress

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// ErrPersistenceUnavailable is matched by every store failure.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// PersistenceError wraps a failed load or save.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistenceUnavailable, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceUnavailable
}

// Store persists the set of completed level ids.
type Store interface {
	// Load returns the stored ids, or nil if nothing has been saved yet.
	Load(ctx context.Context) ([]int, error)

	// Save replaces the stored ids.
	Save(ctx context.Context, levelIDs []int) error
}

// LevelState is a level's position relative to the learner's progress.
type LevelState int

const (
	LevelLocked    LevelState = iota // Earlier levels still incomplete
	LevelCurrent                     // Unlocked, not yet completed
	LevelCompleted                   // Completed at least once
)

// Icon returns the map icon for a level state.
func (s LevelState) Icon() string {
	switch s {
	case LevelLocked:
		return "🔒"
	case LevelCurrent:
		return "▶"
	case LevelCompleted:
		return "★"
	default:
		return "?"
	}
}

// Label returns the display label for a level state.
func (s LevelState) Label() string {
	switch s {
	case LevelLocked:
		return "Locked"
	case LevelCurrent:
		return "Play"
	case LevelCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Tracker owns the set of completed level ids (1-based) and answers unlock
// queries. The set only grows.
type Tracker struct {
	store      Store
	logger     zerolog.Logger
	completed  map[int]bool
	persistent bool
}

// NewTracker loads progress from store. A failed load starts from an empty
// set and disables saving, so unreadable progress is never overwritten.
// A nil store gives an in-memory tracker.
func NewTracker(ctx context.Context, store Store, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		store:     store,
		logger:    logger,
		completed: make(map[int]bool),
	}
	if store == nil {
		return t
	}

	ids, err := store.Load(ctx)
	if err != nil {
		perr := &PersistenceError{Op: "load", Err: err}
		logger.Warn().Err(perr).Msg("progress unavailable, continuing without saving")
		return t
	}

	for _, id := range ids {
		if id > 0 {
			t.completed[id] = true
		}
	}
	t.persistent = true
	logger.Debug().Ints("completed", t.Completed()).Msg("progress loaded")
	return t
}

// MarkCompleted records levelID as completed and persists the set. It
// reports whether the set changed. Save failures are logged and the
// in-memory progress is kept.
func (t *Tracker) MarkCompleted(ctx context.Context, levelID int) bool {
	if levelID < 1 || t.completed[levelID] {
		return false
	}
	t.completed[levelID] = true
	t.logger.Info().Int("level_id", levelID).Msg("level completed")

	if err := t.save(ctx); err != nil {
		t.logger.Warn().Err(err).Int("level_id", levelID).Msg("progress not saved")
	}
	return true
}

func (t *Tracker) save(ctx context.Context) error {
	if !t.persistent {
		return nil
	}
	if err := t.store.Save(ctx, t.Completed()); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// IsUnlocked reports whether the level at the 0-based index is playable.
// Progression is sequential: the first level, every completed level and
// the one after them are open.
func (t *Tracker) IsUnlocked(index int) bool {
	return index == 0 || (index > 0 && index <= len(t.completed))
}

// IsCompleted reports whether the level with the 1-based id is completed.
func (t *Tracker) IsCompleted(levelID int) bool {
	return t.completed[levelID]
}

// State returns the map state for the level at the 0-based index.
func (t *Tracker) State(index int) LevelState {
	switch {
	case !t.IsUnlocked(index):
		return LevelLocked
	case t.IsCompleted(index + 1):
		return LevelCompleted
	default:
		return LevelCurrent
	}
}

// Completed returns the completed ids in ascending order.
func (t *Tracker) Completed() []int {
	ids := make([]int, 0, len(t.completed))
	for id := range t.completed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CompletedCount returns the number of completed levels.
func (t *Tracker) CompletedCount() int {
	return len(t.completed)
}

// Persistent reports whether changes are being written to the store.
func (t *Tracker) Persistent() bool {
	return t.persistent
}

// Mastery returns the completed fraction of a course with total levels.
func (t *Tracker) Mastery(total int) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(len(t.completed)) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}
