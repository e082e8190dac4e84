package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// parseTimestamp parses a timestamp from SQLite TEXT storage. SQLite's
// datetime('now') and Go's driver produce different layouts, so several are
// tried; a zero time is returned if none match.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// =============================================================================
// Selection Queries
// =============================================================================

// CreateSelection inserts a saved selection and fills in its ID and
// creation time.
func (db *DB) CreateSelection(ctx context.Context, sel *Selection) error {
	query := `
		INSERT INTO selections (user_id, activity_id, date, tier, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		sel.UserID, sel.ActivityID, sel.Date, sel.Tier, sel.Notes)
	if err != nil {
		return fmt.Errorf("insert selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("selection insert id: %w", err)
	}
	sel.ID = id

	var createdAt string
	err = db.QueryRowContext(ctx,
		"SELECT created_at FROM selections WHERE id = ?", id).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("read selection created_at: %w", err)
	}
	sel.CreatedAt = parseTimestamp(createdAt)

	return nil
}

// GetSelectionByID retrieves a single selection.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetSelectionByID(ctx context.Context, id int64) (*Selection, error) {
	query := `
		SELECT id, user_id, activity_id, date, tier, notes, created_at
		FROM selections
		WHERE id = ?
	`

	sel, err := scanSelection(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query selection by id: %w", err)
	}
	return sel, nil
}

// ListSelectionsByUser returns a user's selections, newest first.
func (db *DB) ListSelectionsByUser(ctx context.Context, userID string, limit, offset int) ([]*Selection, error) {
	query := `
		SELECT id, user_id, activity_id, date, tier, notes, created_at
		FROM selections
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query selections: %w", err)
	}
	defer rows.Close()

	var selections []*Selection
	for rows.Next() {
		sel, err := scanSelection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		selections = append(selections, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate selections: %w", err)
	}

	return selections, nil
}

// DeleteSelection removes a selection by ID.
// Returns ErrNotFound if nothing was deleted.
func (db *DB) DeleteSelection(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, "DELETE FROM selections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("selection rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetSelectionStats returns per-activity counts for a user's selections.
func (db *DB) GetSelectionStats(ctx context.Context, userID string) (*SelectionStats, error) {
	query := `
		SELECT activity_id, COUNT(*) AS n
		FROM selections
		WHERE user_id = ?
		GROUP BY activity_id
		ORDER BY n DESC, activity_id
	`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query selection stats: %w", err)
	}
	defer rows.Close()

	stats := &SelectionStats{}
	for rows.Next() {
		var ac ActivityCount
		if err := rows.Scan(&ac.ActivityID, &ac.Count); err != nil {
			return nil, fmt.Errorf("scan selection stats: %w", err)
		}
		stats.ByActivity = append(stats.ByActivity, ac)
		stats.Total += ac.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate selection stats: %w", err)
	}

	return stats, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanSelection.
type scanner interface {
	Scan(dest ...any) error
}

func scanSelection(s scanner) (*Selection, error) {
	var sel Selection
	var notes sql.NullString
	var createdAt string

	err := s.Scan(&sel.ID, &sel.UserID, &sel.ActivityID, &sel.Date,
		&sel.Tier, &notes, &createdAt)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		sel.Notes = &notes.String
	}
	sel.CreatedAt = parseTimestamp(createdAt)

	return &sel, nil
}
