package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/unowned-ai/moodlog/pkg/db"
)

const testUser = "me"

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.OpenDBConnection(":memory:", true, "NORMAL")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := db.InitializeSchema(testDB, db.TargetSchemaVersion); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	t.Cleanup(func() { testDB.Close() })
	return testDB
}

func TestUnixSecondsRoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC),
		time.Date(2031, time.December, 31, 23, 59, 59, 123456000, time.UTC),
		time.Unix(0, 0).UTC(),
	} {
		if got := fromUnixSeconds(toUnixSeconds(ts)); !got.Equal(ts) {
			t.Errorf("Expected %s, got %s", ts, got)
		}
	}
}

func TestRecordsAreScopedToUser(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	const other = "someone-else"

	mood, err := LogMood(ctx, testDB, other, "sad", time.Now(), "")
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	insight, err := CreateInsight(ctx, testDB, other, civil.Date{Year: 2024, Month: time.January, Day: 1}, "their week")
	if err != nil {
		t.Fatalf("CreateInsight failed: %v", err)
	}
	entry, err := CreateEntry(ctx, testDB, other, "theirs", "private")
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	if _, err := GetMood(ctx, testDB, testUser, mood.ID); !errors.Is(err, ErrMoodNotFound) {
		t.Errorf("GetMood: expected ErrMoodNotFound, got %v", err)
	}
	if err := DeleteMood(ctx, testDB, testUser, mood.ID); !errors.Is(err, ErrMoodNotFound) {
		t.Errorf("DeleteMood: expected ErrMoodNotFound, got %v", err)
	}
	if _, err := GetInsight(ctx, testDB, testUser, insight.ID); !errors.Is(err, ErrInsightNotFound) {
		t.Errorf("GetInsight: expected ErrInsightNotFound, got %v", err)
	}
	if err := DeleteInsight(ctx, testDB, testUser, insight.ID); !errors.Is(err, ErrInsightNotFound) {
		t.Errorf("DeleteInsight: expected ErrInsightNotFound, got %v", err)
	}
	if _, err := GetEntry(ctx, testDB, testUser, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry: expected ErrEntryNotFound, got %v", err)
	}
	if _, err := UpdateEntry(ctx, testDB, testUser, entry.ID, "mine now", ""); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("UpdateEntry: expected ErrEntryNotFound, got %v", err)
	}
	if err := DeleteEntry(ctx, testDB, testUser, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("DeleteEntry: expected ErrEntryNotFound, got %v", err)
	}

	// The owner still sees everything untouched.
	if _, err := GetMood(ctx, testDB, other, mood.ID); err != nil {
		t.Errorf("Owner GetMood failed: %v", err)
	}
	if _, err := GetInsight(ctx, testDB, other, insight.ID); err != nil {
		t.Errorf("Owner GetInsight failed: %v", err)
	}
	got, err := GetEntry(ctx, testDB, other, entry.ID)
	if err != nil {
		t.Fatalf("Owner GetEntry failed: %v", err)
	}
	if got.Title != "theirs" || got.Deleted {
		t.Errorf("Expected the entry untouched, got %+v", got)
	}
}
