package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/dotpro-mcp/internal/dotpro"
)

// Environment variable names.
const (
	EnvLogLevel     = "DOTPRO_LOG_LEVEL"
	EnvRevision     = "DOTPRO_REVISION"
	EnvArchiveDSN   = "DOTPRO_ARCHIVE_DSN"
	EnvArchiveDebug = "DOTPRO_ARCHIVE_DEBUG"
)

// Settings is the server configuration.
type Settings struct {
	LogLevel     slog.Level
	Revision     dotpro.Revision
	ArchiveDSN   string // empty disables the slice archive
	ArchiveDebug bool

	// MissingEnvFiles lists .env files Load skipped because they do not exist.
	MissingEnvFiles []string
}

// ArchiveEnabled reports whether a slice archive is configured.
func (s Settings) ArchiveEnabled() bool {
	return s.ArchiveDSN != ""
}

// Load reads the given .env files (".env" when none are given) into the
// environment and returns FromEnv. Missing files are skipped and recorded in
// MissingEnvFiles; variables already set in the environment win over file
// values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var missing []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, f)
				continue
			}
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	s, err := FromEnv()
	if err != nil {
		return Settings{}, err
	}
	s.MissingEnvFiles = missing
	return s, nil
}

// FromEnv builds Settings from the process environment.
func FromEnv() (Settings, error) {
	s := Settings{
		LogLevel:   slog.LevelInfo,
		Revision:   dotpro.RevisionCalibrated,
		ArchiveDSN: strings.TrimSpace(os.Getenv(EnvArchiveDSN)),
	}

	if v := Get(EnvLogLevel, ""); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	rev, err := dotpro.LookupRevision(Get(EnvRevision, dotpro.RevisionCalibrated.Name))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", EnvRevision, err)
	}
	s.Revision = rev

	if v := Get(EnvArchiveDebug, ""); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvArchiveDebug, err)
		}
		s.ArchiveDebug = debug
	}

	return s, nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
