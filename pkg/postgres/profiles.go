package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// GetProfile retrieves a single profile by ID. Returns nil with a nil
// error when no profile exists.
func (d *DB) GetProfile(ctx context.Context, id string) (*db.Profile, error) {
	var profile db.Profile
	err := d.pool.QueryRow(ctx, `
		SELECT id, display_name, type, status, email, phone, created_at
		FROM profiles
		WHERE id = $1
	`, id).Scan(
		&profile.ID, &profile.DisplayName, &profile.Type, &profile.Status,
		&profile.Email, &profile.Phone, &profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &profile, nil
}

// InsertProfile inserts a single profile record
func (d *DB) InsertProfile(ctx context.Context, profile *db.Profile) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO profiles (id, display_name, type, status, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, profile.ID, profile.DisplayName, profile.Type, profile.Status,
		profile.Email, profile.Phone, profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", mapDuplicate(err))
	}

	return nil
}

// GetSkills retrieves all skill records for a profile
func (d *DB) GetSkills(ctx context.Context, profileID string) ([]db.Skill, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT profile_id, skill_id, proficiency
		FROM skills
		WHERE profile_id = $1
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []db.Skill
	for rows.Next() {
		var skill db.Skill
		if err := rows.Scan(&skill.ProfileID, &skill.SkillID, &skill.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	return skills, nil
}

// InsertSkills inserts multiple skill records in a single transaction
func (d *DB) InsertSkills(ctx context.Context, skills []db.Skill) error {
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
			INSERT INTO skills (profile_id, skill_id, proficiency)
			VALUES ($1, $2, $3)
			ON CONFLICT (profile_id, skill_id) DO UPDATE SET proficiency = EXCLUDED.proficiency
		`, skill.ProfileID, skill.SkillID, skill.Proficiency)
		if err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAvailability retrieves all availability records for a profile
func (d *DB) GetAvailability(ctx context.Context, profileID string) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT profile_id, day_of_week, time_of_day
		FROM availability
		WHERE profile_id = $1
		ORDER BY day_of_week, time_of_day
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var slots []db.Availability
	for rows.Next() {
		var slot db.Availability
		if err := rows.Scan(&slot.ProfileID, &slot.DayOfWeek, &slot.TimeOfDay); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return slots, nil
}

// InsertAvailability inserts multiple availability records in a single
// transaction
func (d *DB) InsertAvailability(ctx context.Context, slots []db.Availability) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, slot := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO availability (profile_id, day_of_week, time_of_day)
			VALUES ($1, $2, $3)
			ON CONFLICT (profile_id, day_of_week, time_of_day) DO NOTHING
		`, slot.ProfileID, slot.DayOfWeek, slot.TimeOfDay)
		if err != nil {
			return fmt.Errorf("failed to insert availability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
