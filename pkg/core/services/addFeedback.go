package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// AddFeedbackStore defines the database operations needed to record
// feedback on a history entry
type AddFeedbackStore interface {
	GetHistoryEntry(ctx context.Context, id string) (*db.HistoryEntry, error)
	SetHistoryFeedback(ctx context.Context, id, feedback string, rating int) error
}

// AddFeedback records feedback and a rating on a volunteer history entry.
// A rating sticks once set; feedback may still be added or amended later.
func AddFeedback(
	ctx context.Context,
	store AddFeedbackStore,
	logger *zap.Logger,
	historyEntryID string,
	feedback string,
	rating int,
) (*db.HistoryEntry, error) {
	logger.Debug("Starting addFeedback",
		zap.String("history_entry_id", historyEntryID),
		zap.Int("rating", rating))

	if feedback == "" && rating == 0 {
		return nil, validationErrorf("feedback or a rating is required")
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return nil, validationErrorf("rating must be between 1 and 5")
	}

	entry, err := store.GetHistoryEntry(ctx, historyEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("history entry %s: %w", historyEntryID, ErrNotFound)
	}

	if rating != 0 && entry.Rating != 0 {
		return nil, fmt.Errorf("history entry %s: %w", historyEntryID, ErrRatingAlreadySet)
	}
	if rating == 0 {
		rating = entry.Rating
	}
	if feedback == "" {
		feedback = entry.Feedback
	}

	if err := store.SetHistoryFeedback(ctx, historyEntryID, feedback, rating); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	entry.Feedback = feedback
	entry.Rating = rating

	logger.Info("Feedback recorded",
		zap.String("history_entry_id", historyEntryID),
		zap.Int("rating", rating))

	return entry, nil
}
