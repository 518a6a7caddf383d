package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

// LoadSnapshot reads every mood and insight of userID inside one read-only
// transaction, so a concurrent delete can never land between the two reads.
func LoadSnapshot(ctx context.Context, db *sql.DB, userID string) (wellness.Snapshot, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return wellness.Snapshot{}, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	moods, err := listMoods(ctx, tx, userID)
	if err != nil {
		return wellness.Snapshot{}, fmt.Errorf("failed to read moods: %w", err)
	}
	insights, err := listInsights(ctx, tx, userID)
	if err != nil {
		return wellness.Snapshot{}, fmt.Errorf("failed to read insights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return wellness.Snapshot{}, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return wellness.Snapshot{
		Moods:    moods,
		Insights: insights,
		TakenAt:  time.Now().UTC(),
	}, nil
}
