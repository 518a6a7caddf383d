package db

import (
	"path/filepath"
	"testing"

	"github.com/unowned-ai/moodlog/pkg/logger"
)

func TestValidSyncMode(t *testing.T) {
	for mode, want := range map[string]bool{"": true, "full": true, "NORMAL": true, "fast": false} {
		if got := ValidSyncMode(mode); got != want {
			t.Errorf("ValidSyncMode(%q) = %t, want %t", mode, got, want)
		}
	}
}

func TestCloseDBConnectionCheckpointsWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodlog.db")
	dbConn, err := OpenDBConnection(path, true, "FULL")
	if err != nil {
		t.Fatalf("OpenDBConnection failed: %v", err)
	}
	if err := UpgradeDB(dbConn, logger.Nop(), path, TargetSchemaVersion); err != nil {
		t.Fatalf("UpgradeDB failed: %v", err)
	}

	if err := CloseDBConnection(dbConn, logger.Nop()); err != nil {
		t.Fatalf("CloseDBConnection failed: %v", err)
	}
	if err := dbConn.Ping(); err == nil {
		t.Errorf("Expected the connection to be closed")
	}
	if err := CloseDBConnection(nil, logger.Nop()); err != nil {
		t.Errorf("Expected nil db to be a no-op, got %v", err)
	}
}
