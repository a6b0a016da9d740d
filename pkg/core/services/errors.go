package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes callers are expected to branch on.
// Anything else bubbling out of a service is a dependency failure.
var (
	// ErrNotFound means a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the acting profile lacks permission for the target
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateApplication means the volunteer already applied to the event
	ErrDuplicateApplication = errors.New("an application already exists for this volunteer and event")

	// ErrEventClosed means the event is not accepting applications
	ErrEventClosed = errors.New("event is not accepting applications")

	// ErrCapacityExceeded means the event's accepted-volunteer cap is full
	ErrCapacityExceeded = errors.New("event has reached maximum volunteer capacity")

	// ErrInvalidTransition means the requested status change is not legal
	// from the entity's current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRatingAlreadySet means the history entry already carries a rating
	ErrRatingAlreadySet = errors.New("rating has already been recorded")
)

// IsConflict reports whether err is one of the conflict-class failures:
// duplicate application, capacity exceeded, invalid transition, or a
// repeated rating. Conflicts are never retried as-is.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateApplication) ||
		errors.Is(err, ErrEventClosed) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrRatingAlreadySet)
}

// ValidationError reports malformed input. It is surfaced immediately and
// never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
