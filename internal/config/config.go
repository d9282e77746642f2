// Package config resolves runtime settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/abhisek/grammarjourney/internal/logging"
	"github.com/abhisek/grammarjourney/internal/store"
)

// Environment variables read by Load.
const (
	EnvDB       = "GRAMMARJOURNEY_DB"
	EnvCatalog  = "GRAMMARJOURNEY_CATALOG"
	EnvLogLevel = "GRAMMARJOURNEY_LOG_LEVEL"
)

// LogFileName is created next to the database.
const LogFileName = "grammarjourney.log"

// Config holds resolved settings.
type Config struct {
	DBPath      string
	CatalogPath string // empty means the built-in course
	LogPath     string
	LogLevel    zerolog.Level

	// StorageErr is set when the database directory could not be prepared.
	// Play continues without saving progress.
	StorageErr error
}

// Flags carries command-line values. Empty fields fall through to the
// environment.
type Flags struct {
	DBPath      string
	CatalogPath string
	LogLevel    string

	// EnvFile is the dotenv file to read; empty means ".env".
	EnvFile string
}

// Load resolves settings. Precedence is flag, then environment, then the
// dotenv file (which never overrides variables already set), then
// defaults. The database directory is created if missing; failing to do so
// is reported in StorageErr rather than as an error.
func Load(f Flags) (Config, error) {
	if err := loadEnvFile(f.EnvFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	var err error

	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
		err = store.EnsureDir(cfg.DBPath)
	} else {
		cfg.DBPath, err = store.DefaultDBPath()
	}
	if err != nil {
		cfg.StorageErr = fmt.Errorf("prepare DB path: %w", err)
	}

	cfg.CatalogPath = firstNonEmpty(f.CatalogPath, os.Getenv(EnvCatalog))
	if cfg.DBPath != "" {
		cfg.LogPath = filepath.Join(filepath.Dir(cfg.DBPath), LogFileName)
	}

	cfg.LogLevel, err = logging.ParseLevel(firstNonEmpty(f.LogLevel, os.Getenv(EnvLogLevel)))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile reads a dotenv file. A missing default file is not an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
