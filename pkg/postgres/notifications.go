package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// InsertNotification inserts a single notification record
func (d *DB) InsertNotification(ctx context.Context, notification *db.Notification) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO notifications (id, recipient_id, sender_id, type, title, message, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, notification.ID, notification.RecipientID, notification.SenderID,
		notification.Type, notification.Title, notification.Message,
		notification.Link, notification.IsRead, notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}
