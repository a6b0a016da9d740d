package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// NotificationSink accepts fire-and-forget notification records. Delivery
// failures are logged and never roll back persisted state.
type NotificationSink interface {
	Notify(ctx context.Context, notification db.Notification) error
}

// notificationTemplate is one entry in the static per-outcome lookup table.
// The body is a format string taking the event title.
type notificationTemplate struct {
	Type  string
	Title string
	Body  string
}

var decisionTemplates = map[model.Decision]notificationTemplate{
	model.DecisionAccept: {
		Type:  "application_accepted",
		Title: "Application accepted",
		Body:  "Your application for %s has been accepted.",
	},
	model.DecisionReject: {
		Type:  "application_rejected",
		Title: "Application update",
		Body:  "Your application for %s was not accepted this time.",
	},
	model.DecisionWaitlist: {
		Type:  "application_waitlisted",
		Title: "Application waitlisted",
		Body:  "You have been added to the waitlist for %s.",
	},
}

var eventCompletedTemplate = notificationTemplate{
	Type:  "event_completed",
	Title: "Event completed",
	Body:  "Thank you for volunteering at %s. Your participation has been recorded.",
}

var eventCanceledTemplate = notificationTemplate{
	Type:  "event_canceled",
	Title: "Event canceled",
	Body:  "%s has been canceled by the organizer.",
}

// sendEventNotification builds a notification from a template and hands it
// to the sink. Failures are logged at Warn and returned so bulk callers can
// accumulate them; single-application callers discard the error.
func sendEventNotification(
	ctx context.Context,
	sink NotificationSink,
	logger *zap.Logger,
	tmpl notificationTemplate,
	recipientID string,
	senderID string,
	event *db.Event,
	linkBase string,
) error {
	notification := db.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        tmpl.Type,
		Title:       tmpl.Title,
		Message:     fmt.Sprintf(tmpl.Body, event.Title),
		Link:        fmt.Sprintf("%s/%s", linkBase, event.ID),
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := sink.Notify(ctx, notification); err != nil {
		logger.Warn("Failed to deliver notification",
			zap.String("recipient_id", recipientID),
			zap.String("type", tmpl.Type),
			zap.String("event_id", event.ID),
			zap.Error(err))
		return fmt.Errorf("failed to notify %s: %w", recipientID, err)
	}

	logger.Debug("Notification queued",
		zap.String("recipient_id", recipientID),
		zap.String("type", tmpl.Type),
		zap.String("event_id", event.ID))
	return nil
}
