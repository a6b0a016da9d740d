package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

const applicationColumns = `id, event_id, volunteer_id, status, message, admin_message,
	match_score, created_at, updated_at`

func scanApplication(row pgx.Row) (*db.Application, error) {
	var app db.Application
	err := row.Scan(
		&app.ID, &app.EventID, &app.VolunteerID, &app.Status, &app.Message,
		&app.AdminMessage, &app.MatchScore, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApplication retrieves a single application by ID. Returns nil with a
// nil error when no application exists.
func (d *DB) GetApplication(ctx context.Context, id string) (*db.Application, error) {
	app, err := scanApplication(d.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}

	return app, nil
}

// GetApplicationByEventAndVolunteer retrieves the application a volunteer
// holds for an event. Returns nil with a nil error when none exists.
func (d *DB) GetApplicationByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*db.Application, error) {
	app, err := scanApplication(d.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE event_id = $1 AND volunteer_id = $2
	`, eventID, volunteerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}

	return app, nil
}

func (d *DB) queryApplications(ctx context.Context, query string, args ...any) ([]db.Application, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []db.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

// GetApplicationsByEvent retrieves all applications for an event, newest
// first
func (d *DB) GetApplicationsByEvent(ctx context.Context, eventID string) ([]db.Application, error) {
	return d.queryApplications(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE event_id = $1
		ORDER BY created_at DESC
	`, eventID)
}

// GetApplicationsByEventAndStatus retrieves an event's applications in a
// given status
func (d *DB) GetApplicationsByEventAndStatus(ctx context.Context, eventID, status string) ([]db.Application, error) {
	return d.queryApplications(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, eventID, status)
}

// InsertApplication inserts a single application record. Returns
// db.ErrDuplicate when an application already exists for the
// (event, volunteer) pair.
func (d *DB) InsertApplication(ctx context.Context, app *db.Application) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO applications (id, event_id, volunteer_id, status, message, admin_message,
			match_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, app.ID, app.EventID, app.VolunteerID, app.Status, app.Message,
		app.AdminMessage, app.MatchScore, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", mapDuplicate(err))
	}

	return nil
}

// AcceptApplicationWithinCapacity accepts a pending application only while
// the event's accepted count is below maxVolunteers, as a single
// conditional update so concurrent accepts cannot overshoot the cap.
// maxVolunteers of 0 means no cap. Reports whether the row was updated.
func (d *DB) AcceptApplicationWithinCapacity(ctx context.Context, applicationID string, maxVolunteers int, adminMessage string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE applications a
		SET status = 'accepted', admin_message = $3, updated_at = NOW()
		WHERE a.id = $1
		  AND a.status = 'pending'
		  AND ($2 = 0 OR (
			SELECT COUNT(*) FROM applications
			WHERE event_id = a.event_id AND status = 'accepted'
		  ) < $2)
	`, applicationID, maxVolunteers, adminMessage)
	if err != nil {
		return false, fmt.Errorf("failed to accept application: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DecideApplication sets a pending application's status and admin message,
// reporting whether the row was updated
func (d *DB) DecideApplication(ctx context.Context, applicationID, status, adminMessage string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE applications
		SET status = $2, admin_message = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, applicationID, status, adminMessage)
	if err != nil {
		return false, fmt.Errorf("failed to decide application: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// TransitionApplication sets the application status only when the current
// status is one of allowedFrom, reporting whether a row was updated
func (d *DB) TransitionApplication(ctx context.Context, applicationID, to string, allowedFrom ...string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`, applicationID, to, allowedFrom)
	if err != nil {
		return false, fmt.Errorf("failed to transition application: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteApplicationsByEvent removes all applications for an event
func (d *DB) DeleteApplicationsByEvent(ctx context.Context, eventID string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM applications WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete applications: %w", err)
	}

	return nil
}
