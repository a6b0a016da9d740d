package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// HistoryRecord is one volunteer history entry with the event title
// resolved. EventTitle is empty when the event has since been deleted; the
// history row outlives it.
type HistoryRecord struct {
	Entry      db.HistoryEntry
	EventTitle string
}

// ListHistoryStore defines the database operations needed to list a
// volunteer's history
type ListHistoryStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	GetHistoryByVolunteer(ctx context.Context, volunteerID string) ([]db.HistoryEntry, error)
	GetEvent(ctx context.Context, id string) (*db.Event, error)
}

// ListHistory returns the volunteer's participation history, newest first
func ListHistory(
	ctx context.Context,
	store ListHistoryStore,
	logger *zap.Logger,
	volunteerID string,
) ([]HistoryRecord, error) {
	logger.Debug("Starting listHistory", zap.String("volunteer_id", volunteerID))

	volunteer, err := store.GetProfile(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer profile: %w", err)
	}
	if volunteer == nil {
		return nil, fmt.Errorf("volunteer %s: %w", volunteerID, ErrNotFound)
	}

	entries, err := store.GetHistoryByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer history: %w", err)
	}

	records := make([]HistoryRecord, 0, len(entries))
	for _, entry := range entries {
		record := HistoryRecord{Entry: entry}
		event, err := store.GetEvent(ctx, entry.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch event %s: %w", entry.EventID, err)
		}
		if event != nil {
			record.EventTitle = event.Title
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Entry.CreatedAt.After(records[j].Entry.CreatedAt)
	})

	logger.Info("History listed",
		zap.String("volunteer_id", volunteerID),
		zap.Int("count", len(records)))

	return records, nil
}
