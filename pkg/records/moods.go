package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var (
	ErrMoodNotFound     = errors.New("mood not found")
	ErrInvalidMoodInput = errors.New("invalid mood input")
)

const (
	logMoodStatement = `
	INSERT INTO moods (id, user_id, category, occurred_at, note)
	VALUES (?, ?, ?, ?, ?)
	`

	getMoodStatement = `
	SELECT id, user_id, category, occurred_at, note
	FROM moods
	WHERE id = ? AND user_id = ?
	`

	listMoodsStatement = `
	SELECT id, user_id, category, occurred_at, note
	FROM moods
	WHERE user_id = ?
	ORDER BY occurred_at DESC, id
	`

	deleteMoodStatement = `
	DELETE FROM moods
	WHERE id = ? AND user_id = ?
	`
)

// LogMood records a mood for userID. The category must be one of the
// recognized ones; a zero occurredAt means now.
func LogMood(ctx context.Context, db *sql.DB, userID, category string, occurredAt time.Time, note string) (wellness.MoodRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return wellness.MoodRecord{}, fmt.Errorf("%w: user is required", ErrInvalidMoodInput)
	}
	c, ok := wellness.ParseCategory(category)
	if !ok {
		return wellness.MoodRecord{}, fmt.Errorf("%w: unknown category %q", ErrInvalidMoodInput, category)
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	moodID := uuid.New()
	_, err := db.ExecContext(
		ctx,
		logMoodStatement,
		moodID,
		userID,
		string(c),
		toUnixSeconds(occurredAt),
		strings.TrimSpace(note),
	)
	if err != nil {
		return wellness.MoodRecord{}, err
	}

	return GetMood(ctx, db, userID, moodID)
}

// GetMood returns a mood of userID. Another user's mood is not found.
func GetMood(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) (wellness.MoodRecord, error) {
	mood, err := scanMood(db.QueryRowContext(ctx, getMoodStatement, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wellness.MoodRecord{}, ErrMoodNotFound
		}
		return wellness.MoodRecord{}, err
	}
	return mood, nil
}

// ListMoods returns every mood of userID, newest first.
func ListMoods(ctx context.Context, db *sql.DB, userID string) ([]wellness.MoodRecord, error) {
	return listMoods(ctx, db, userID)
}

// DeleteMood removes a mood of userID. Unknown ids and other users' moods
// report ErrMoodNotFound and change nothing.
func DeleteMood(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, deleteMoodStatement, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMoodNotFound
	}

	return nil
}

func listMoods(ctx context.Context, q queryer, userID string) ([]wellness.MoodRecord, error) {
	rows, err := q.QueryContext(ctx, listMoodsStatement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	moods := []wellness.MoodRecord{}
	for rows.Next() {
		mood, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moods, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMood(row rowScanner) (wellness.MoodRecord, error) {
	var (
		mood       wellness.MoodRecord
		category   string
		occurredAt float64
	)
	err := row.Scan(
		&mood.ID,
		&mood.UserID,
		&category,
		&occurredAt,
		&mood.Note,
	)
	if err != nil {
		return wellness.MoodRecord{}, err
	}
	mood.Category = wellness.Category(category)
	mood.OccurredAt = fromUnixSeconds(occurredAt)
	return mood, nil
}
