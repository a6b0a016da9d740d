// Package notify provides notification sink implementations for delivering
// event and application updates to volunteers. Sinks satisfy the
// services.NotificationSink interface.
package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// StoreSink persists notifications to the notification store for the UI
// layer to surface
type StoreSink struct {
	store db.NotificationStore
}

// NewStoreSink creates a sink backed by the notification store
func NewStoreSink(store db.NotificationStore) *StoreSink {
	return &StoreSink{store: store}
}

// Notify writes the notification to the store
func (s *StoreSink) Notify(ctx context.Context, notification db.Notification) error {
	if err := s.store.InsertNotification(ctx, &notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	return nil
}

// FanoutSink delivers each notification to every wrapped sink. All sinks
// are attempted; failures are collected rather than short-circuiting.
type FanoutSink struct {
	sinks  []sink
	logger *zap.Logger
}

type sink interface {
	Notify(ctx context.Context, notification db.Notification) error
}

// NewFanoutSink creates a sink that fans out to the given sinks in order
func NewFanoutSink(logger *zap.Logger, sinks ...sink) *FanoutSink {
	return &FanoutSink{sinks: sinks, logger: logger}
}

// Notify delivers the notification to all sinks, returning the combined
// errors of any that failed
func (f *FanoutSink) Notify(ctx context.Context, notification db.Notification) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Notify(ctx, notification); err != nil {
			f.logger.Warn("notification sink failed",
				zap.String("notification_id", notification.ID),
				zap.String("recipient_id", notification.RecipientID),
				zap.Error(err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
