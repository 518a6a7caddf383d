package records

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

func TestLoadSnapshot(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	day1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	for _, m := range []struct {
		category string
		at       time.Time
	}{
		{"happy", day1},
		{"happy", day1.Add(10 * time.Hour)},
		{"sad", day1.Add(24 * time.Hour)},
	} {
		if _, err := LogMood(ctx, testDB, testUser, m.category, m.at, ""); err != nil {
			t.Fatalf("LogMood failed: %v", err)
		}
	}
	if _, err := CreateInsight(ctx, testDB, testUser, civil.DateOf(day1), "steady"); err != nil {
		t.Fatalf("CreateInsight failed: %v", err)
	}
	if _, err := LogMood(ctx, testDB, "other", "stressed", day1, ""); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}

	snap, err := LoadSnapshot(ctx, testDB, testUser)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snap.Moods) != 3 || len(snap.Insights) != 1 {
		t.Fatalf("Expected 3 moods and 1 insight, got %d and %d", len(snap.Moods), len(snap.Insights))
	}
	if snap.TakenAt.IsZero() {
		t.Errorf("Expected TakenAt to be set")
	}

	views := snap.Views(wellness.Query{})
	if views.Frequency.Count(wellness.Happy) != 2 || views.Frequency.Count(wellness.Sad) != 1 {
		t.Errorf("Unexpected frequency: %v", views.Frequency)
	}
	if views.Balance != (wellness.BalanceProfile{2, 0, 1, 0, 0}) {
		t.Errorf("Unexpected balance: %v", views.Balance)
	}
	if len(views.Trend) != 2 || views.Trend[0].AverageScore.StringFixed(2) != "5.00" {
		t.Errorf("Unexpected trend: %v", views.Trend)
	}
}

func TestLoadSnapshotEmpty(t *testing.T) {
	testDB := setupTestDB(t)

	snap, err := LoadSnapshot(context.Background(), testDB, testUser)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if snap.Moods == nil || snap.Insights == nil {
		t.Errorf("Expected empty non-nil slices, got %#v", snap)
	}
}
