package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/grammarjourney/internal/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List course levels and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		st, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker := progress.NewTracker(ctx, st.ProgressRepo(), zerolog.Nop())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n\n", cat.Title)
		fmt.Fprintf(out, "%3s  %-32s  %9s  %5s  %s\n", "#", "Title", "Questions", "Words", "State")
		fmt.Fprintln(out, strings.Repeat("─", 68))

		for i, lvl := range cat.Levels {
			title := lvl.Title
			if len(title) > 32 {
				title = title[:29] + "..."
			}
			state := tracker.State(i)
			fmt.Fprintf(out, "%3d  %-32s  %9d  %5d  %s %s\n",
				i+1, title, len(lvl.Questions), lvl.WordCount(), state.Icon(), state.Label())
		}

		fmt.Fprintf(out, "\n%d / %d levels completed\n", tracker.CompletedCount(), cat.Len())
		return nil
	},
}
