package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// EmailSender sends a single email, implemented by gmailclient.Client
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// RecipientDirectory resolves a profile ID to an email address. An empty
// address means the profile has no email on file.
type RecipientDirectory interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
}

// EmailSink delivers notifications by email. Recipients without an email
// address are skipped silently.
type EmailSink struct {
	sender    EmailSender
	directory RecipientDirectory
	logger    *zap.Logger
}

// NewEmailSink creates an email-backed notification sink
func NewEmailSink(sender EmailSender, directory RecipientDirectory, logger *zap.Logger) *EmailSink {
	return &EmailSink{sender: sender, directory: directory, logger: logger}
}

// Notify emails the notification to its recipient
func (e *EmailSink) Notify(ctx context.Context, notification db.Notification) error {
	profile, err := e.directory.GetProfile(ctx, notification.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to look up recipient: %w", err)
	}
	if profile == nil || profile.Email == "" {
		e.logger.Debug("skipping email notification, recipient has no address",
			zap.String("recipient_id", notification.RecipientID))
		return nil
	}

	body := notification.Message
	if notification.Link != "" {
		body = fmt.Sprintf("%s\n\n%s", notification.Message, notification.Link)
	}

	if err := e.sender.SendEmail(profile.Email, notification.Title, body); err != nil {
		return fmt.Errorf("failed to email notification: %w", err)
	}

	return nil
}
