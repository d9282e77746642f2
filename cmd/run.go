package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/grammarjourney/internal/app"
	"github.com/abhisek/grammarjourney/internal/config"
	"github.com/abhisek/grammarjourney/internal/course"
	"github.com/abhisek/grammarjourney/internal/exercise"
	"github.com/abhisek/grammarjourney/internal/logging"
	"github.com/abhisek/grammarjourney/internal/progress"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logFile, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	defer logFile.Close()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load course: %w", err)
	}

	progressStore, closer := openProgress(cfg, logger, os.Stderr)
	defer closer.Close()

	tracker := progress.NewTracker(ctx, progressStore, logger)
	nav := course.New(cat, tracker, exercise.RandomShuffler(), logger)

	logger.Info().
		Str("course", cat.Title).
		Str("version", cat.Version).
		Int("levels", cat.Len()).
		Int("completed", tracker.CompletedCount()).
		Msg("starting")

	return app.Run(ctx, app.Options{Navigator: nav, Logger: logger})
}

// openProgress returns the progress store for cfg. A store that cannot be
// opened degrades to an unsaved session: the returned store is nil and a
// warning goes to w.
func openProgress(cfg config.Config, logger zerolog.Logger, w io.Writer) (progress.Store, io.Closer) {
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(w, "Progress store unavailable:", err)
		fmt.Fprintln(w, "Progress will not be saved.")
		logger.Warn().Err(err).Str("db", cfg.DBPath).Msg("store unavailable")
		return nil, noopCloser{}
	}
	return st.ProgressRepo(), st
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
