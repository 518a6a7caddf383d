package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/unowned-ai/moodlog/pkg/logger"
)

const (
	// TargetSchemaVersion is the highest schema version this version of the code supports for the wellnessdb component.
	TargetSchemaVersion int64 = 1
	// WellnessDBComponent is the name for the main wellness database component.
	WellnessDBComponent = "wellnessdb"
)

// GetComponentSchemaVersion retrieves the schema version for a given component.
// Returns 0 if the component is not found or the versions table doesn't exist yet.
func GetComponentSchemaVersion(db *sql.DB, componentName string) (int64, error) {
	query := `SELECT version FROM moodlog_versions WHERE component = ?;`

	var version int64
	err := db.QueryRow(query, componentName).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if strings.Contains(err.Error(), "no such table") && strings.Contains(err.Error(), "moodlog_versions") {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan version for component '%s': %w", componentName, err)
	}
	return version, nil
}

// InitializeSchema creates all wellnessdb tables and records schemaVersionToSet.
func InitializeSchema(db *sql.DB, schemaVersionToSet int64) error {
	if _, err := db.Exec(SchemaV1); err != nil {
		return fmt.Errorf("failed to execute schema v1 SQL: %w", err)
	}

	insertVersionSQL := `
INSERT INTO moodlog_versions (component, version) VALUES (?, ?)
ON CONFLICT(component) DO UPDATE SET version = excluded.version, created_at = unixepoch();`

	if _, err := db.Exec(insertVersionSQL, WellnessDBComponent, schemaVersionToSet); err != nil {
		return fmt.Errorf("failed to insert/update version for component %s to %d: %w", WellnessDBComponent, schemaVersionToSet, err)
	}
	return nil
}

// UpgradeDB brings the wellnessdb component of db to appTargetSchemaVersion.
// dbIdentifierForLog is used for logging and error messages only.
func UpgradeDB(db *sql.DB, log *logger.Logger, dbIdentifierForLog string, appTargetSchemaVersion int64) error {
	currentDBVersion, err := GetComponentSchemaVersion(db, WellnessDBComponent)
	if err != nil {
		return err
	}

	switch {
	case currentDBVersion == 0:
		log.Info("initializing database schema",
			"component", WellnessDBComponent, "db", dbIdentifierForLog, "version", appTargetSchemaVersion)
		if err := InitializeSchema(db, appTargetSchemaVersion); err != nil {
			return fmt.Errorf("failed to initialize component %s in database '%s': %w", WellnessDBComponent, dbIdentifierForLog, err)
		}
		return nil
	case currentDBVersion == appTargetSchemaVersion:
		log.Debug("database schema up to date",
			"component", WellnessDBComponent, "db", dbIdentifierForLog, "version", currentDBVersion)
		return nil
	case currentDBVersion < appTargetSchemaVersion:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is older than application's target schema version %d. Automatic migration from this older version is not yet supported", WellnessDBComponent, dbIdentifierForLog, currentDBVersion, appTargetSchemaVersion)
	default:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is newer than application's target schema version %d. Please upgrade the application", WellnessDBComponent, dbIdentifierForLog, currentDBVersion, appTargetSchemaVersion)
	}
}
