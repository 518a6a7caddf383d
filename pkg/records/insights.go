package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var (
	ErrInsightNotFound     = errors.New("insight not found")
	ErrInvalidInsightInput = errors.New("invalid insight input")
)

const (
	createInsightStatement = `
	INSERT INTO insights (id, user_id, week_start, summary)
	VALUES (?, ?, ?, ?)
	`

	getInsightStatement = `
	SELECT id, user_id, week_start, summary, created_at
	FROM insights
	WHERE id = ? AND user_id = ?
	`

	listInsightsStatement = `
	SELECT id, user_id, week_start, summary, created_at
	FROM insights
	WHERE user_id = ?
	ORDER BY week_start ASC, created_at ASC
	`

	deleteInsightStatement = `
	DELETE FROM insights
	WHERE id = ? AND user_id = ?
	`
)

// CreateInsight stores a weekly reflection. Input is validated before
// anything reaches storage: a missing week start or a blank summary is
// rejected with ErrInvalidInsightInput.
func CreateInsight(ctx context.Context, db *sql.DB, userID string, weekStart civil.Date, summary string) (wellness.Insight, error) {
	userID = strings.TrimSpace(userID)
	summary = strings.TrimSpace(summary)
	switch {
	case userID == "":
		return wellness.Insight{}, fmt.Errorf("%w: user is required", ErrInvalidInsightInput)
	case weekStart.IsZero() || !weekStart.IsValid():
		return wellness.Insight{}, fmt.Errorf("%w: week start is required", ErrInvalidInsightInput)
	case summary == "":
		return wellness.Insight{}, fmt.Errorf("%w: summary is required", ErrInvalidInsightInput)
	}

	insightID := uuid.New()
	_, err := db.ExecContext(
		ctx,
		createInsightStatement,
		insightID,
		userID,
		weekStart.String(),
		summary,
	)
	if err != nil {
		return wellness.Insight{}, err
	}

	return GetInsight(ctx, db, userID, insightID)
}

func GetInsight(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) (wellness.Insight, error) {
	insight, err := scanInsight(db.QueryRowContext(ctx, getInsightStatement, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wellness.Insight{}, ErrInsightNotFound
		}
		return wellness.Insight{}, err
	}
	return insight, nil
}

// ListInsights returns the full, unfiltered ledger of userID.
func ListInsights(ctx context.Context, db *sql.DB, userID string) ([]wellness.Insight, error) {
	return listInsights(ctx, db, userID)
}

// DeleteInsight removes an insight of userID. Deleting an unknown id, or one
// owned by another user, changes nothing and reports ErrInsightNotFound.
func DeleteInsight(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, deleteInsightStatement, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInsightNotFound
	}

	return nil
}

func listInsights(ctx context.Context, q queryer, userID string) ([]wellness.Insight, error) {
	rows, err := q.QueryContext(ctx, listInsightsStatement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insights := []wellness.Insight{}
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return insights, nil
}

func scanInsight(row rowScanner) (wellness.Insight, error) {
	var (
		insight   wellness.Insight
		weekStart string
		createdAt float64
	)
	err := row.Scan(
		&insight.ID,
		&insight.UserID,
		&weekStart,
		&insight.Summary,
		&createdAt,
	)
	if err != nil {
		return wellness.Insight{}, err
	}

	insight.WeekStart, err = civil.ParseDate(weekStart)
	if err != nil {
		return wellness.Insight{}, fmt.Errorf("insight %s has malformed week start %q: %w", insight.ID, weekStart, err)
	}
	insight.CreatedAt = fromUnixSeconds(createdAt)
	return insight, nil
}
