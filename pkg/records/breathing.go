package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBreathingSessionNotFound = errors.New("breathing session not found")
	ErrInvalidBreathingInput    = errors.New("invalid breathing session input")
)

const (
	// MaxBreathingMinutes caps a single session.
	MaxBreathingMinutes = 120
	// DefaultBreathingKind is used when no kind is given.
	DefaultBreathingKind = "guided"
)

// BreathingSession is one finished breathing exercise. Sessions are kept
// beside moods and never feed the aggregation views.
type BreathingSession struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Minutes   int       `json:"duration_minutes"`
	Kind      string    `json:"type"`
	SessionAt time.Time `json:"session_at"`
}

const (
	logBreathingStatement = `
	INSERT INTO breathing_sessions (id, user_id, minutes, kind, session_at)
	VALUES (?, ?, ?, ?, ?)
	`

	getBreathingStatement = `
	SELECT id, user_id, minutes, kind, session_at
	FROM breathing_sessions
	WHERE id = ? AND user_id = ?
	`

	listBreathingStatement = `
	SELECT id, user_id, minutes, kind, session_at
	FROM breathing_sessions
	WHERE user_id = ?
	ORDER BY session_at DESC, id
	`

	deleteBreathingStatement = `
	DELETE FROM breathing_sessions
	WHERE id = ? AND user_id = ?
	`
)

// LogBreathingSession records a finished session of the given length in
// minutes. An empty kind means DefaultBreathingKind; a zero sessionAt
// means now.
func LogBreathingSession(ctx context.Context, db *sql.DB, userID string, minutes int, kind string, sessionAt time.Time) (BreathingSession, error) {
	userID = strings.TrimSpace(userID)
	kind = strings.ToLower(strings.TrimSpace(kind))
	switch {
	case userID == "":
		return BreathingSession{}, fmt.Errorf("%w: user is required", ErrInvalidBreathingInput)
	case minutes <= 0 || minutes > MaxBreathingMinutes:
		return BreathingSession{}, fmt.Errorf("%w: duration must be 1-%d minutes, got %d", ErrInvalidBreathingInput, MaxBreathingMinutes, minutes)
	}
	if kind == "" {
		kind = DefaultBreathingKind
	}
	if sessionAt.IsZero() {
		sessionAt = time.Now()
	}

	sessionID := uuid.New()
	_, err := db.ExecContext(
		ctx,
		logBreathingStatement,
		sessionID,
		userID,
		minutes,
		kind,
		toUnixSeconds(sessionAt),
	)
	if err != nil {
		return BreathingSession{}, err
	}

	return GetBreathingSession(ctx, db, userID, sessionID)
}

func GetBreathingSession(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) (BreathingSession, error) {
	session, err := scanBreathingSession(db.QueryRowContext(ctx, getBreathingStatement, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BreathingSession{}, ErrBreathingSessionNotFound
		}
		return BreathingSession{}, err
	}
	return session, nil
}

// ListBreathingSessions returns every session of userID, newest first.
func ListBreathingSessions(ctx context.Context, db *sql.DB, userID string) ([]BreathingSession, error) {
	rows, err := db.QueryContext(ctx, listBreathingStatement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []BreathingSession{}
	for rows.Next() {
		session, err := scanBreathingSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func DeleteBreathingSession(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, deleteBreathingStatement, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBreathingSessionNotFound
	}

	return nil
}

func scanBreathingSession(row rowScanner) (BreathingSession, error) {
	var (
		session   BreathingSession
		sessionAt float64
	)
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Minutes,
		&session.Kind,
		&sessionAt,
	)
	if err != nil {
		return BreathingSession{}, err
	}
	session.SessionAt = fromUnixSeconds(sessionAt)
	return session, nil
}
