package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/grammarjourney/internal/config"
	"github.com/abhisek/grammarjourney/internal/progress"
	"github.com/abhisek/grammarjourney/internal/store"
)

const builtinCourse = "../internal/catalog/courses/grammar-journey.yaml"

// run executes the root command with args and returns its output. Flags
// keep their values between runs, so tests pass every flag they rely on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "progress.db")
}

func seedProgress(t *testing.T, db string, ids ...int) {
	t.Helper()
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.ProgressRepo().Save(context.Background(), ids))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "grammarjourney")
}

func TestCatalogValidate_Builtin(t *testing.T) {
	out, err := run(t, "catalog", "validate", builtinCourse)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "Grammar Journey")
	assert.Contains(t, out, "5 levels")
}

func TestCatalogValidate_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: v1.0.0
title: Broken
levels:
  - id: 1
    title: Gap
    questions:
      - source: "Birds sing."
        words:
          - {id: w1, position: 1, text: Birds}
          - {id: w2, position: 3, text: sing}
`), 0o644))

	_, err := run(t, "catalog", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed catalog entry")
}

func TestCatalogValidate_RequiresFile(t *testing.T) {
	_, err := run(t, "catalog", "validate")
	assert.Error(t, err)
}

func TestLevels(t *testing.T) {
	db := testDB(t)
	seedProgress(t, db, 1)

	out, err := run(t, "levels", "--db", db, "--catalog", builtinCourse, "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject and Verb")
	assert.Contains(t, out, "1 / 5 levels completed")

	lines := strings.Split(out, "\n")
	var states []string
	for _, l := range lines {
		for _, label := range []string{"Completed", "Play", "Locked"} {
			if strings.HasSuffix(l, label) {
				states = append(states, label)
			}
		}
	}
	assert.Equal(t, []string{"Completed", "Play", "Locked", "Locked", "Locked"}, states)
}

func TestReset_RequiresConfirmation(t *testing.T) {
	db := testDB(t)
	seedProgress(t, db, 1, 2)

	_, err := run(t, "reset", "--db", db, "--yes=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	ids, err := st.ProgressRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}

func TestReset(t *testing.T) {
	db := testDB(t)
	seedProgress(t, db, 1, 2)

	out, err := run(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress cleared.")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	ids, err := st.ProgressRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// brokenDataHome points XDG_DATA_HOME at a regular file so the data
// directory cannot be created.
func brokenDataHome(t *testing.T) {
	t.Helper()
	notDir := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o644))
	t.Setenv("XDG_DATA_HOME", notDir)
	t.Setenv(config.EnvDB, "")
	require.NoError(t, os.Unsetenv(config.EnvDB))
	t.Chdir(t.TempDir())
}

func TestOpenProgress_UnwritableDataHomeDegrades(t *testing.T) {
	brokenDataHome(t)

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)

	var warn bytes.Buffer
	ps, closer := openProgress(cfg, zerolog.Nop(), &warn)
	defer closer.Close()

	assert.Nil(t, ps)
	assert.Contains(t, warn.String(), "Progress will not be saved.")

	tracker := progress.NewTracker(context.Background(), ps, zerolog.Nop())
	assert.False(t, tracker.Persistent())
	assert.True(t, tracker.MarkCompleted(context.Background(), 1))
	assert.True(t, tracker.IsUnlocked(1))
}

func TestOpenProgress_OpensStore(t *testing.T) {
	cfg := config.Config{DBPath: testDB(t)}

	var warn bytes.Buffer
	ps, closer := openProgress(cfg, zerolog.Nop(), &warn)
	defer closer.Close()

	require.NotNil(t, ps)
	assert.Empty(t, warn.String())
	require.NoError(t, ps.Save(context.Background(), []int{1}))
}

func TestLevels_UnwritableDataHomeFails(t *testing.T) {
	course, err := filepath.Abs(builtinCourse)
	require.NoError(t, err)
	brokenDataHome(t)

	_, err = run(t, "levels", "--db", "", "--catalog", course, "--log-level", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store")
}
