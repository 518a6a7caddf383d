package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/config"
	pkgdb "github.com/unowned-ai/moodlog/pkg/db"
	"github.com/unowned-ai/moodlog/pkg/logger"
	"github.com/unowned-ai/moodlog/pkg/utils"
)

// loadRuntime resolves the config (file, then env, then explicit flags) and
// builds the logger.
func loadRuntime(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.DBPath = dbPath
	}
	if flags.Changed("wal") {
		loaded.WAL = walMode
	}
	if flags.Changed("sync") {
		loaded.Sync = syncMode
	}
	if flags.Changed("user") {
		loaded.User = userFlag
	}
	if flags.Changed("tz") {
		loaded.Timezone = tzFlag
	}
	if flags.Changed("log-mode") {
		loaded.LogMode = logMode
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logger.New(loaded.LogMode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	cfg, log = loaded, l
	return nil
}

// openDB opens the configured database and brings its schema up to date.
func openDB() (*sql.DB, error) {
	path, err := utils.ResolveAndEnsureDBPath(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	dbConn, err := pkgdb.OpenDBConnection(path, cfg.WAL, cfg.Sync)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pkgdb.UpgradeDB(dbConn, log, path, pkgdb.TargetSchemaVersion); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to initialize/upgrade database schema for '%s': %w", path, err)
	}
	return dbConn, nil
}

func closeDB(dbConn *sql.DB) {
	if err := pkgdb.CloseDBConnection(dbConn, log); err != nil {
		log.Warn("Failed to close database", "error", err)
	}
}

func location() *time.Location {
	loc, err := cfg.Location()
	if err != nil {
		return time.UTC
	}
	return loc
}

// formatTimestamp converts a Unix timestamp (float64, seconds since epoch)
// to a human-readable string in RFC3339 format.
func formatTimestamp(timestamp float64) string {
	timeObj := time.Unix(int64(timestamp), 0).In(location())
	return timeObj.Format(time.RFC3339)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

// parseTimestamp accepts RFC 3339 or a local "YYYY-MM-DD[ HH:MM]" in loc.
// The empty string yields the zero time.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected RFC 3339 or YYYY-MM-DD[ HH:MM]", s)
}
