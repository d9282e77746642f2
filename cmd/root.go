package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/config"
	"github.com/abhisek/grammarjourney/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "grammarjourney",
	Short: "Sentence-building grammar course",
	Long:  "Grammar Journey: rebuild scrambled sentences, one level at a time, in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRAMMARJOURNEY_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a course YAML file (overrides GRAMMARJOURNEY_CATALOG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides GRAMMARJOURNEY_LOG_LEVEL env var)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings with flags taking priority over the
// environment, then .env, then XDG defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	db, _ := cmd.Flags().GetString("db")
	cat, _ := cmd.Flags().GetString("catalog")
	lvl, _ := cmd.Flags().GetString("log-level")
	return config.Load(config.Flags{DBPath: db, CatalogPath: cat, LogLevel: lvl})
}

// openStore opens the configured database, failing early when its
// directory could not be prepared.
func openStore(cfg config.Config) (*store.Store, error) {
	if cfg.StorageErr != nil {
		return nil, cfg.StorageErr
	}
	return store.Open(cfg.DBPath)
}

// loadCatalog returns the configured course, or the built-in one.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.CatalogPath)
}
