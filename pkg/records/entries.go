package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound     = errors.New("entry not found")
	ErrInvalidEntryInput = errors.New("invalid entry input")
)

const (
	createEntryStatement = `
	INSERT INTO entries (id, user_id, title, content, deleted)
	VALUES (?, ?, ?, ?, ?)
	`

	getEntryStatement = `
	SELECT id, user_id, title, content, deleted, created_at, updated_at
	FROM entries
	WHERE id = ? AND user_id = ?
	`

	listEntriesStatement = `
	SELECT id, user_id, title, content, deleted, created_at, updated_at
	FROM entries
	WHERE user_id = ? AND (deleted = FALSE OR ?)
	ORDER BY updated_at DESC, created_at DESC
	`

	searchEntriesStatement = `
	SELECT id, user_id, title, content, deleted, created_at, updated_at
	FROM entries
	WHERE user_id = ? AND deleted = FALSE
	  AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')
	ORDER BY updated_at DESC, created_at DESC
	`

	updateEntryStatement = `
	UPDATE entries
	SET title = ?, content = ?, updated_at = unixepoch('subsec')
	WHERE id = ? AND user_id = ?
	`

	softDeleteEntryStatement = `
	UPDATE entries
	SET deleted = TRUE, updated_at = unixepoch('subsec')
	WHERE id = ? AND user_id = ? AND deleted = FALSE
	`

	cleanDeletedEntriesStatement = `
	DELETE FROM entries
	WHERE user_id = ? AND deleted = TRUE
	`
)

// CreateEntry stores a journal entry. Title and content are both required.
func CreateEntry(ctx context.Context, db *sql.DB, userID, title, content string) (Entry, error) {
	userID = strings.TrimSpace(userID)
	title = strings.TrimSpace(title)
	switch {
	case userID == "":
		return Entry{}, fmt.Errorf("%w: user is required", ErrInvalidEntryInput)
	case title == "":
		return Entry{}, fmt.Errorf("%w: title is required", ErrInvalidEntryInput)
	case strings.TrimSpace(content) == "":
		return Entry{}, fmt.Errorf("%w: content is required", ErrInvalidEntryInput)
	}

	entryID := uuid.New()
	_, err := db.ExecContext(
		ctx,
		createEntryStatement,
		entryID,
		userID,
		title,
		content,
		false,
	)
	if err != nil {
		return Entry{}, err
	}

	return GetEntry(ctx, db, userID, entryID)
}

// GetEntry returns an entry of userID by id, soft-deleted ones included.
func GetEntry(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) (Entry, error) {
	entry, err := scanEntry(db.QueryRowContext(ctx, getEntryStatement, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

// TODO: Add pagination support
func ListEntries(ctx context.Context, db *sql.DB, userID string, includeDeleted bool) ([]Entry, error) {
	rows, err := db.QueryContext(ctx, listEntriesStatement, userID, includeDeleted)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// SearchEntries returns live entries whose title or content contains query,
// case-insensitively for ASCII.
func SearchEntries(ctx context.Context, db *sql.DB, userID, query string) ([]Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Entry{}, nil
	}
	pattern := "%" + escapeLike(query) + "%"

	rows, err := db.QueryContext(ctx, searchEntriesStatement, userID, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// UpdateEntry replaces title and content; an empty value keeps the
// existing one.
func UpdateEntry(ctx context.Context, db *sql.DB, userID string, id uuid.UUID, title, content string) (Entry, error) {
	existingEntry, err := GetEntry(ctx, db, userID, id)
	if err != nil {
		return Entry{}, err
	}
	if existingEntry.Deleted {
		return Entry{}, ErrEntryNotFound
	}

	if strings.TrimSpace(title) == "" {
		title = existingEntry.Title
	}
	if strings.TrimSpace(content) == "" {
		content = existingEntry.Content
	}

	res, err := db.ExecContext(ctx, updateEntryStatement, strings.TrimSpace(title), content, id, userID)
	if err != nil {
		return Entry{}, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return Entry{}, err
	}

	if rowsAffected == 0 {
		return Entry{}, ErrEntryNotFound
	}

	return GetEntry(ctx, db, userID, id)
}

// DeleteEntry soft-deletes an entry. It stays readable through GetEntry
// until CleanDeletedEntries purges it.
func DeleteEntry(ctx context.Context, db *sql.DB, userID string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, softDeleteEntryStatement, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// CleanDeletedEntries permanently removes the soft-deleted entries of userID.
func CleanDeletedEntries(ctx context.Context, db *sql.DB, userID string) (int64, error) {
	res, err := db.ExecContext(ctx, cleanDeletedEntriesStatement, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func collectEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Deleted,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return entry, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
