package wellness

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Category is a mood label. Only the values in Categories are recognized;
// anything else is carried through untouched and tolerated by aggregation.
type Category string

const (
	Happy    Category = "happy"
	Neutral  Category = "neutral"
	Sad      Category = "sad"
	Anxious  Category = "anxious"
	Stressed Category = "stressed"
)

const categoryCount = 5

// Categories lists the recognized categories in balance-profile order.
var Categories = [categoryCount]Category{Happy, Neutral, Sad, Anxious, Stressed}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	return c.index() >= 0
}

func (c Category) index() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return -1
}

// ParseCategory normalizes user input ("  Happy ") to a recognized category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// MoodRecord is one logged mood event. Records are immutable once created.
type MoodRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Category   Category  `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       string    `json:"note,omitempty"`
}

// Insight is a user-authored weekly reflection.
type Insight struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	WeekStart civil.Date `json:"week_start"`
	Summary   string     `json:"summary"`
	CreatedAt time.Time  `json:"created_at"`
}

// Snapshot is an immutable point-in-time copy of one user's records.
type Snapshot struct {
	Moods    []MoodRecord
	Insights []Insight
	TakenAt  time.Time
}

// Views computes every derived view of s for q.
func (s Snapshot) Views(q Query) Views {
	return ComputeViews(s.Moods, s.Insights, q)
}
