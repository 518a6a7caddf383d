package records

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"
)

// Entry is a free-text journal entry. Entries are stored alongside moods and
// insights but never feed the aggregation views.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Deleted   bool      `json:"deleted,omitempty"`
	CreatedAt float64   `json:"created_at"`
	UpdatedAt float64   `json:"updated_at"`
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Timestamps are stored as fractional unix seconds with microsecond precision.
func toUnixSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

func fromUnixSeconds(s float64) time.Time {
	return time.UnixMicro(int64(math.Round(s * 1e6))).UTC()
}
