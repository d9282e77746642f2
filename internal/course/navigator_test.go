package course

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/exercise"
	"github.com/abhisek/grammarjourney/internal/level"
	"github.com/abhisek/grammarjourney/internal/progress"
)

type memStore struct {
	ids []int
}

func (m *memStore) Load(_ context.Context) ([]int, error) {
	return slices.Clone(m.ids), nil
}

func (m *memStore) Save(_ context.Context, ids []int) error {
	m.ids = slices.Clone(ids)
	return nil
}

func question(words ...string) catalog.Question {
	q := catalog.Question{Source: "source"}
	for i, text := range words {
		q.Words = append(q.Words, catalog.Word{ID: text, Position: i + 1, Text: text})
	}
	return q
}

func testCatalog(levels int) *catalog.Catalog {
	cat := &catalog.Catalog{Version: "v1.0.0", Title: "Test Course"}
	for i := range levels {
		cat.Levels = append(cat.Levels, catalog.Level{
			ID:    i + 1,
			Title: "Level",
			Questions: []catalog.Question{
				question("Loving", "him", "is", "red"),
				question("Birds", "sing"),
			},
		})
	}
	return cat
}

func reverse(words []catalog.Word) { slices.Reverse(words) }

func newNavigator(t *testing.T, cat *catalog.Catalog, st progress.Store) *Navigator {
	t.Helper()
	tr := progress.NewTracker(context.Background(), st, zerolog.Nop())
	return New(cat, tr, reverse, zerolog.Nop())
}

func solveCurrent(t *testing.T, n *Navigator) {
	t.Helper()
	s := n.Runner().Session()
	for _, w := range s.Question().CanonicalOrder() {
		require.NoError(t, s.SelectWord(w.ID))
	}
	status, err := s.CheckAnswer()
	require.NoError(t, err)
	require.Equal(t, exercise.StatusCorrect, status)
}

func TestNew_StartsOnMap(t *testing.T) {
	n := newNavigator(t, testCatalog(3), &memStore{})

	assert.Equal(t, ModeMap, n.Mode())
	assert.Equal(t, -1, n.SelectedLevel())
	assert.Nil(t, n.Runner())
}

func TestEntries(t *testing.T) {
	n := newNavigator(t, testCatalog(4), &memStore{ids: []int{1}})

	entries := n.Entries()
	require.Len(t, entries, 4)
	want := []progress.LevelState{
		progress.LevelCompleted,
		progress.LevelCurrent,
		progress.LevelLocked,
		progress.LevelLocked,
	}
	for i, e := range entries {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, i+1, e.Level.ID)
		assert.Equal(t, want[i], e.State, "entry %d", i)
	}
}

func TestSelectLevel(t *testing.T) {
	n := newNavigator(t, testCatalog(3), &memStore{})

	require.NoError(t, n.SelectLevel(0))
	assert.Equal(t, ModeLearning, n.Mode())
	assert.Equal(t, 0, n.SelectedLevel())
	require.NotNil(t, n.Runner())
	assert.Equal(t, 0, n.Runner().QuestionIndex())
}

func TestSelectLevel_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"locked", 1},
		{"negative", -1},
		{"out of range", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNavigator(t, testCatalog(3), &memStore{})
			err := n.SelectLevel(tt.index)
			assert.True(t, errors.Is(err, exercise.ErrInvalidOperation))
			assert.Equal(t, ModeMap, n.Mode())
			assert.Nil(t, n.Runner())
		})
	}
}

func TestSelectLevel_ReentryResetsRunner(t *testing.T) {
	n := newNavigator(t, testCatalog(2), &memStore{})

	require.NoError(t, n.SelectLevel(0))
	solveCurrent(t, n)
	_, err := n.Advance(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n.Runner().QuestionIndex())

	n.BackToMap()
	require.NoError(t, n.SelectLevel(0))
	assert.Equal(t, 0, n.Runner().QuestionIndex())
}

func TestBackToMap_DoesNotRecordProgress(t *testing.T) {
	st := &memStore{}
	n := newNavigator(t, testCatalog(2), st)

	require.NoError(t, n.SelectLevel(0))
	solveCurrent(t, n)
	n.BackToMap()

	assert.Equal(t, ModeMap, n.Mode())
	assert.Nil(t, n.Runner())
	assert.Zero(t, n.Tracker().CompletedCount())
	assert.Empty(t, st.ids)
	assert.False(t, n.Tracker().IsUnlocked(1))
}

func TestAdvance_OnMapRejected(t *testing.T) {
	n := newNavigator(t, testCatalog(1), &memStore{})
	_, err := n.Advance(context.Background())
	assert.True(t, errors.Is(err, exercise.ErrInvalidOperation))
}

func TestAdvance_UnsolvedRejected(t *testing.T) {
	n := newNavigator(t, testCatalog(1), &memStore{})
	require.NoError(t, n.SelectLevel(0))

	_, err := n.Advance(context.Background())
	assert.True(t, errors.Is(err, exercise.ErrInvalidOperation))
	assert.Equal(t, ModeLearning, n.Mode())
}

func TestOnLevelComplete_OnMapRejected(t *testing.T) {
	n := newNavigator(t, testCatalog(1), &memStore{})
	err := n.OnLevelComplete(context.Background())
	assert.True(t, errors.Is(err, exercise.ErrInvalidOperation))
	assert.Zero(t, n.Tracker().CompletedCount())
}

// A two-question level played to the end: the level is recorded, the
// next level unlocks, and the last level returns to the map.
func TestEndToEnd_LastLevelReturnsToMap(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	n := newNavigator(t, testCatalog(1), st)

	require.NoError(t, n.SelectLevel(0))

	first := n.Runner().Session()
	solveCurrent(t, n)
	outcome, err := n.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, level.OutcomeNextQuestion, outcome)
	assert.Equal(t, 1, n.Runner().QuestionIndex())
	assert.NotSame(t, first, n.Runner().Session())
	assert.Equal(t, exercise.StatusPlaying, n.Runner().Session().Status())

	solveCurrent(t, n)
	outcome, err = n.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, level.OutcomeLevelComplete, outcome)

	assert.Equal(t, ModeMap, n.Mode())
	assert.True(t, n.Tracker().IsCompleted(1))
	assert.True(t, n.Tracker().IsUnlocked(1))
	assert.Equal(t, []int{1}, st.ids)
}

func TestEndToEnd_ContinuesToNextLevel(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	n := newNavigator(t, testCatalog(2), st)

	require.NoError(t, n.SelectLevel(0))
	for range 2 {
		solveCurrent(t, n)
		_, err := n.Advance(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, ModeLearning, n.Mode())
	assert.Equal(t, 1, n.SelectedLevel())
	assert.Equal(t, 0, n.Runner().QuestionIndex())
	assert.Equal(t, []int{1}, st.ids)

	n.BackToMap()
	entries := n.Entries()
	assert.Equal(t, progress.LevelCompleted, entries[0].State)
	assert.Equal(t, progress.LevelCurrent, entries[1].State)
}

func TestReplayCompletedLevel_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := &memStore{ids: []int{1}}
	n := newNavigator(t, testCatalog(1), st)

	require.NoError(t, n.SelectLevel(0))
	for range 2 {
		solveCurrent(t, n)
		_, err := n.Advance(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, ModeMap, n.Mode())
	assert.Equal(t, 1, n.Tracker().CompletedCount())
	assert.Equal(t, []int{1}, st.ids)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "map", ModeMap.String())
	assert.Equal(t, "learning", ModeLearning.String())
}

func TestLogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	tr := progress.NewTracker(context.Background(), &memStore{}, zerolog.Nop())
	n := New(testCatalog(1), tr, reverse, zerolog.New(&buf).Level(zerolog.DebugLevel))

	require.NoError(t, n.SelectLevel(0))
	runID := n.Runner().RunID()
	n.BackToMap()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, runID, entry["run_id"])
		assert.EqualValues(t, 1, entry["level_id"])
		assert.NotContains(t, entry, "run")
	}
}
