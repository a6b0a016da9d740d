package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// GetHistoryEntry retrieves a single history entry by ID. Returns nil with
// a nil error when no entry exists.
func (d *DB) GetHistoryEntry(ctx context.Context, id string) (*db.HistoryEntry, error) {
	var entry db.HistoryEntry
	err := d.pool.QueryRow(ctx, `
		SELECT id, volunteer_id, event_id, hours_logged, feedback, rating, created_at
		FROM volunteer_history
		WHERE id = $1
	`, id).Scan(
		&entry.ID, &entry.VolunteerID, &entry.EventID, &entry.HoursLogged,
		&entry.Feedback, &entry.Rating, &entry.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query history entry: %w", err)
	}

	return &entry, nil
}

// GetHistoryByVolunteer retrieves a volunteer's full history, newest first
func (d *DB) GetHistoryByVolunteer(ctx context.Context, volunteerID string) ([]db.HistoryEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, volunteer_id, event_id, hours_logged, feedback, rating, created_at
		FROM volunteer_history
		WHERE volunteer_id = $1
		ORDER BY created_at DESC
	`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []db.HistoryEntry
	for rows.Next() {
		var entry db.HistoryEntry
		err := rows.Scan(
			&entry.ID, &entry.VolunteerID, &entry.EventID, &entry.HoursLogged,
			&entry.Feedback, &entry.Rating, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// InsertHistoryEntry inserts a single history record. The unique
// (volunteer_id, event_id) constraint makes the completion sweep
// re-runnable: an entry that already exists is left untouched and the
// method reports false.
func (d *DB) InsertHistoryEntry(ctx context.Context, entry *db.HistoryEntry) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		INSERT INTO volunteer_history (id, volunteer_id, event_id, hours_logged, feedback, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (volunteer_id, event_id) DO NOTHING
	`, entry.ID, entry.VolunteerID, entry.EventID, entry.HoursLogged,
		entry.Feedback, entry.Rating, entry.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert history entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetHistoryFeedback sets the feedback text and rating on a history entry
func (d *DB) SetHistoryFeedback(ctx context.Context, id, feedback string, rating int) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE volunteer_history
		SET feedback = $2, rating = $3
		WHERE id = $1
	`, id, feedback, rating)
	if err != nil {
		return fmt.Errorf("failed to set history feedback: %w", err)
	}

	return nil
}
