package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

// maxSeriesOccurrences caps how many draft events one series call can
// create, guarding against unbounded rules like FREQ=DAILY with no UNTIL
const maxSeriesOccurrences = 52

// EventSeriesResult reports the events created from a recurrence rule
type EventSeriesResult struct {
	RRule     string
	EventIDs  []string
	FirstDate time.Time
	LastDate  time.Time
}

// CreateEventSeries expands an RRULE into a series of draft events sharing
// the template's fields. The template's start time anchors the recurrence;
// each occurrence keeps the template's time of day and duration. Occurrence
// count is bounded by maxOccurrences (capped at 52).
func CreateEventSeries(
	ctx context.Context,
	store CreateEventStore,
	logger *zap.Logger,
	template EventInput,
	rruleStr string,
	maxOccurrences int,
) (*EventSeriesResult, error) {
	logger.Debug("Starting createEventSeries",
		zap.String("rrule", rruleStr),
		zap.Int("max_occurrences", maxOccurrences))

	if err := validateEventInput(template); err != nil {
		return nil, err
	}

	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return nil, validationErrorf("invalid recurrence rule: %v", err)
	}
	rule.DTStart(template.StartsAt)

	if maxOccurrences <= 0 || maxOccurrences > maxSeriesOccurrences {
		maxOccurrences = maxSeriesOccurrences
	}

	// Expand within a bounded window so open-ended rules terminate
	windowEnd := template.StartsAt.AddDate(1, 0, 0)
	occurrences := rule.Between(template.StartsAt, windowEnd, true)
	if len(occurrences) == 0 {
		return nil, validationErrorf("recurrence rule yields no occurrences within a year of the start time")
	}
	if len(occurrences) > maxOccurrences {
		occurrences = occurrences[:maxOccurrences]
	}
	logger.Debug("Expanded recurrence rule", zap.Int("occurrences", len(occurrences)))

	duration := template.EndsAt.Sub(template.StartsAt)
	result := &EventSeriesResult{
		RRule:     rruleStr,
		FirstDate: occurrences[0],
		LastDate:  occurrences[len(occurrences)-1],
	}

	for _, occurrence := range occurrences {
		instance := template
		instance.StartsAt = occurrence
		instance.EndsAt = occurrence.Add(duration)

		event, err := CreateEvent(ctx, store, logger, instance)
		if err != nil {
			return nil, fmt.Errorf("failed to create event for occurrence %s: %w",
				occurrence.Format("2006-01-02"), err)
		}
		result.EventIDs = append(result.EventIDs, event.ID)
	}

	logger.Info("Event series created",
		zap.Int("events", len(result.EventIDs)),
		zap.Time("first", result.FirstDate),
		zap.Time("last", result.LastDate))

	return result, nil
}
