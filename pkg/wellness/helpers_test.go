package wellness

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

func day(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func mood(c Category, ts string) MoodRecord {
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return MoodRecord{ID: uuid.New(), UserID: "me", Category: c, OccurredAt: at}
}

func insight(t *testing.T, weekStart, summary string) Insight {
	t.Helper()
	return Insight{ID: uuid.New(), UserID: "me", WeekStart: day(t, weekStart), Summary: summary}
}
