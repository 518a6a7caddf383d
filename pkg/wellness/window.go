package wellness

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

var ErrInvalidDate = errors.New("invalid date")

// Window is an inclusive calendar-date range. A zero bound is unset; a
// window with both bounds unset matches everything. Start after End is
// allowed and matches nothing.
type Window struct {
	Start civil.Date
	End   civil.Date
}

// IsSet reports whether at least one bound is present.
func (w Window) IsSet() bool {
	return !w.Start.IsZero() || !w.End.IsZero()
}

// Contains reports whether d satisfies every present bound. Invalid dates
// never satisfy a bounded window.
func (w Window) Contains(d civil.Date) bool {
	if !w.IsSet() {
		return true
	}
	if !d.IsValid() {
		return false
	}
	if !w.Start.IsZero() && d.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && d.After(w.End) {
		return false
	}
	return true
}

func (w Window) String() string {
	bound := func(d civil.Date) string {
		if d.IsZero() {
			return "*"
		}
		return d.String()
	}
	return fmt.Sprintf("[%s, %s]", bound(w.Start), bound(w.End))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseWindow builds a Window from optional YYYY-MM-DD bounds; an empty
// string leaves that bound unset.
func ParseWindow(start, end string) (Window, error) {
	var w Window
	var err error
	if strings.TrimSpace(start) != "" {
		if w.Start, err = ParseDate(start); err != nil {
			return Window{}, fmt.Errorf("window start: %w", err)
		}
	}
	if strings.TrimSpace(end) != "" {
		if w.End, err = ParseDate(end); err != nil {
			return Window{}, fmt.Errorf("window end: %w", err)
		}
	}
	return w, nil
}

// Filter returns the items whose date lies within w. With an unset window
// the input slice itself is returned. The input is never reordered or
// modified.
func Filter[T any](items []T, w Window, dateOf func(T) civil.Date) []T {
	if !w.IsSet() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if w.Contains(dateOf(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Query carries everything a computation needs besides the snapshot.
type Query struct {
	Window Window
	// Location decides which calendar day a mood timestamp falls on.
	// Nil means UTC.
	Location *time.Location
}

func (q Query) location() *time.Location {
	if q.Location == nil {
		return time.UTC
	}
	return q.Location
}

// MoodDate returns the local calendar date of m, or the zero (invalid) date
// when m has no timestamp.
func (q Query) MoodDate(m MoodRecord) civil.Date {
	if m.OccurredAt.IsZero() {
		return civil.Date{}
	}
	return civil.DateOf(m.OccurredAt.In(q.location()))
}

func insightDate(i Insight) civil.Date {
	return i.WeekStart
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
