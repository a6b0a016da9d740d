package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

const eventColumns = `id, creator_id, title, description, location, starts_at, ends_at,
	min_volunteers, max_volunteers, status, created_at, updated_at`

func scanEvent(row pgx.Row) (*db.Event, error) {
	var event db.Event
	err := row.Scan(
		&event.ID, &event.CreatorID, &event.Title, &event.Description, &event.Location,
		&event.StartsAt, &event.EndsAt, &event.MinVolunteers, &event.MaxVolunteers,
		&event.Status, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEvent retrieves a single event by ID. Returns nil with a nil error
// when no event exists.
func (d *DB) GetEvent(ctx context.Context, id string) (*db.Event, error) {
	event, err := scanEvent(d.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	return event, nil
}

// GetPublishedEvents retrieves all events currently open for applications,
// ordered by start time
func (d *DB) GetPublishedEvents(ctx context.Context) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE status = 'published'
		ORDER BY starts_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query published events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// GetEventSkills retrieves the skill requirements of an event
func (d *DB) GetEventSkills(ctx context.Context, eventID string) ([]db.EventSkill, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT event_id, skill_id, importance
		FROM event_skills
		WHERE event_id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event skills: %w", err)
	}
	defer rows.Close()

	var skills []db.EventSkill
	for rows.Next() {
		var skill db.EventSkill
		if err := rows.Scan(&skill.EventID, &skill.SkillID, &skill.Importance); err != nil {
			return nil, fmt.Errorf("failed to scan event skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event skills: %w", err)
	}

	return skills, nil
}

// InsertEvent inserts a single event record
func (d *DB) InsertEvent(ctx context.Context, event *db.Event) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO events (id, creator_id, title, description, location, starts_at, ends_at,
			min_volunteers, max_volunteers, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, event.ID, event.CreatorID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.MinVolunteers, event.MaxVolunteers,
		event.Status, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", mapDuplicate(err))
	}

	return nil
}

// UpdateEvent rewrites the mutable fields of an event record
func (d *DB) UpdateEvent(ctx context.Context, event *db.Event) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE events
		SET title = $2, description = $3, location = $4, starts_at = $5, ends_at = $6,
			min_volunteers = $7, max_volunteers = $8, updated_at = $9
		WHERE id = $1
	`, event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.MinVolunteers, event.MaxVolunteers,
		event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

// InsertEventSkills inserts multiple event skill requirements in a single
// transaction
func (d *DB) InsertEventSkills(ctx context.Context, skills []db.EventSkill) error {
	if len(skills) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, skill := range skills {
		_, err := tx.Exec(ctx, `
			INSERT INTO event_skills (event_id, skill_id, importance)
			VALUES ($1, $2, $3)
		`, skill.EventID, skill.SkillID, skill.Importance)
		if err != nil {
			return fmt.Errorf("failed to insert event skill: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// TransitionEventStatus sets the event status only when the current status
// is one of allowedFrom, reporting whether a row was updated
func (d *DB) TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE events
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`, eventID, to, allowedFrom)
	if err != nil {
		return false, fmt.Errorf("failed to transition event status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteEventSkills removes all skill requirements of an event
func (d *DB) DeleteEventSkills(ctx context.Context, eventID string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM event_skills WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event skills: %w", err)
	}

	return nil
}

// DeleteEvent removes a single event record
func (d *DB) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
