package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// WithdrawApplicationStore defines the database operations needed to
// withdraw an application
type WithdrawApplicationStore interface {
	GetApplication(ctx context.Context, id string) (*db.Application, error)
	TransitionApplication(ctx context.Context, applicationID, to string, allowedFrom ...string) (bool, error)
}

// WithdrawApplication lets a volunteer cancel their own application while
// it is still pending
func WithdrawApplication(
	ctx context.Context,
	store WithdrawApplicationStore,
	logger *zap.Logger,
	applicationID string,
	byVolunteerID string,
) (*db.Application, error) {
	logger.Debug("Starting withdrawApplication",
		zap.String("application_id", applicationID),
		zap.String("volunteer_id", byVolunteerID))

	application, err := store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
	}

	if application.VolunteerID != byVolunteerID {
		return nil, fmt.Errorf("application %s does not belong to volunteer %s: %w",
			applicationID, byVolunteerID, ErrForbidden)
	}

	updated, err := store.TransitionApplication(ctx, applicationID,
		string(model.ApplicationCanceled), string(model.ApplicationPending))
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw application: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("application %s is %s, only pending applications can be withdrawn: %w",
			applicationID, application.Status, ErrInvalidTransition)
	}

	application.Status = string(model.ApplicationCanceled)
	application.UpdatedAt = time.Now().UTC()

	logger.Info("Application withdrawn",
		zap.String("application_id", applicationID),
		zap.String("volunteer_id", byVolunteerID))

	return application, nil
}
