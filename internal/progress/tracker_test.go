package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store with injectable failures.
type memStore struct {
	ids     []int
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(_ context.Context) ([]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]int(nil), m.ids...), nil
}

func (m *memStore) Save(_ context.Context, ids []int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ids = append([]int(nil), ids...)
	return nil
}

func newTracker(t *testing.T, st Store) *Tracker {
	t.Helper()
	return NewTracker(context.Background(), st, zerolog.Nop())
}

func TestNewTracker_LoadsStoredProgress(t *testing.T) {
	tr := newTracker(t, &memStore{ids: []int{2, 1}})

	assert.Equal(t, []int{1, 2}, tr.Completed())
	assert.Equal(t, 2, tr.CompletedCount())
	assert.True(t, tr.Persistent())
}

func TestNewTracker_AbsentProgress(t *testing.T) {
	tr := newTracker(t, &memStore{})
	assert.Empty(t, tr.Completed())
	assert.True(t, tr.IsUnlocked(0))
	assert.False(t, tr.IsUnlocked(1))
}

func TestNewTracker_LoadFailureStartsEmptyAndStopsSaving(t *testing.T) {
	st := &memStore{ids: []int{1, 2, 3}, loadErr: errors.New("disk gone")}
	tr := newTracker(t, st)

	assert.Empty(t, tr.Completed())
	assert.False(t, tr.Persistent())
	assert.True(t, tr.IsUnlocked(0))
	assert.False(t, tr.IsUnlocked(1))

	assert.True(t, tr.MarkCompleted(context.Background(), 1))
	assert.Equal(t, 0, st.saves, "unreadable progress must not be overwritten")
	assert.Equal(t, []int{1, 2, 3}, st.ids)
}

func TestNewTracker_NilStore(t *testing.T) {
	tr := newTracker(t, nil)
	assert.True(t, tr.MarkCompleted(context.Background(), 1))
	assert.True(t, tr.IsUnlocked(1))
}

func TestMarkCompleted_PersistsEveryChange(t *testing.T) {
	st := &memStore{}
	tr := newTracker(t, st)
	ctx := context.Background()

	require.True(t, tr.MarkCompleted(ctx, 1))
	assert.Equal(t, []int{1}, st.ids)
	require.True(t, tr.MarkCompleted(ctx, 2))
	assert.Equal(t, []int{1, 2}, st.ids)
	assert.Equal(t, 2, st.saves)
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	st := &memStore{}
	tr := newTracker(t, st)
	ctx := context.Background()

	require.True(t, tr.MarkCompleted(ctx, 1))
	once := tr.Completed()
	assert.False(t, tr.MarkCompleted(ctx, 1))

	assert.Equal(t, once, tr.Completed())
	assert.Equal(t, 1, st.saves)
}

func TestMarkCompleted_RejectsInvalidIDs(t *testing.T) {
	tr := newTracker(t, &memStore{})
	assert.False(t, tr.MarkCompleted(context.Background(), 0))
	assert.False(t, tr.MarkCompleted(context.Background(), -3))
	assert.Empty(t, tr.Completed())
}

func TestMarkCompleted_SaveFailureKeepsMemory(t *testing.T) {
	st := &memStore{saveErr: errors.New("read-only")}
	tr := newTracker(t, st)
	ctx := context.Background()

	assert.True(t, tr.MarkCompleted(ctx, 1))
	assert.True(t, tr.IsCompleted(1))
	assert.True(t, tr.IsUnlocked(1))

	// Storage recovers; the next change writes the full set.
	st.saveErr = nil
	assert.True(t, tr.MarkCompleted(ctx, 2))
	assert.Equal(t, []int{1, 2}, st.ids)
}

func TestIsUnlocked_Sequential(t *testing.T) {
	ctx := context.Background()
	for k := 0; k <= 4; k++ {
		tr := newTracker(t, &memStore{})
		for id := 1; id <= k; id++ {
			tr.MarkCompleted(ctx, id)
		}
		for i := 0; i < 7; i++ {
			want := i <= k
			assert.Equal(t, want, tr.IsUnlocked(i), "k=%d i=%d", k, i)
		}
		assert.False(t, tr.IsUnlocked(-1))
	}
}

func TestState(t *testing.T) {
	tr := newTracker(t, &memStore{ids: []int{1, 2}})

	assert.Equal(t, LevelCompleted, tr.State(0))
	assert.Equal(t, LevelCompleted, tr.State(1))
	assert.Equal(t, LevelCurrent, tr.State(2))
	assert.Equal(t, LevelLocked, tr.State(3))

	assert.Equal(t, "Locked", LevelLocked.Label())
	assert.NotEmpty(t, LevelCurrent.Icon())
}

func TestRoundTrip(t *testing.T) {
	st := &memStore{}
	ctx := context.Background()
	tr := newTracker(t, st)
	tr.MarkCompleted(ctx, 3)
	tr.MarkCompleted(ctx, 1)

	reloaded := newTracker(t, st)
	assert.Equal(t, tr.Completed(), reloaded.Completed())

	// Saving what was loaded leaves the store unchanged.
	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, loaded))
	again, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestMastery(t *testing.T) {
	tr := newTracker(t, &memStore{ids: []int{1}})
	assert.InDelta(t, 0.25, tr.Mastery(4), 1e-9)
	assert.Equal(t, 0.0, tr.Mastery(0))
	assert.Equal(t, 1.0, tr.Mastery(1))
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("locked")
	err := error(&PersistenceError{Op: "save", Err: cause})
	assert.True(t, errors.Is(err, ErrPersistenceUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "save")
}
