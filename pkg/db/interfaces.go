package db

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by inserts that violate a uniqueness constraint,
// such as a second application for the same (event, volunteer) pair.
type duplicateError struct{}

func (duplicateError) Error() string { return "duplicate record" }

var ErrDuplicate error = duplicateError{}

// IsDuplicate reports whether err is a uniqueness violation
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// ProfileStore defines the profile and skill read operations
type ProfileStore interface {
	// GetProfile returns nil with a nil error when no profile exists
	GetProfile(ctx context.Context, id string) (*Profile, error)
	InsertProfile(ctx context.Context, profile *Profile) error
	GetSkills(ctx context.Context, profileID string) ([]Skill, error)
	InsertSkills(ctx context.Context, skills []Skill) error
	GetAvailability(ctx context.Context, profileID string) ([]Availability, error)
	InsertAvailability(ctx context.Context, slots []Availability) error
}

// EventStore defines the event and event-skill operations
type EventStore interface {
	// GetEvent returns nil with a nil error when no event exists
	GetEvent(ctx context.Context, id string) (*Event, error)
	GetPublishedEvents(ctx context.Context) ([]Event, error)
	GetEventSkills(ctx context.Context, eventID string) ([]EventSkill, error)
	InsertEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	InsertEventSkills(ctx context.Context, skills []EventSkill) error
	// TransitionEventStatus sets the event status only when the current
	// status is one of allowedFrom, reporting whether a row was updated
	TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error)
	DeleteEventSkills(ctx context.Context, eventID string) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// ApplicationStore defines the application operations
type ApplicationStore interface {
	// GetApplication returns nil with a nil error when no application exists
	GetApplication(ctx context.Context, id string) (*Application, error)
	GetApplicationByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*Application, error)
	GetApplicationsByEvent(ctx context.Context, eventID string) ([]Application, error)
	GetApplicationsByEventAndStatus(ctx context.Context, eventID, status string) ([]Application, error)
	// InsertApplication returns ErrDuplicate when an application already
	// exists for the (event, volunteer) pair
	InsertApplication(ctx context.Context, application *Application) error
	// AcceptApplicationWithinCapacity accepts a pending application only
	// while the event's accepted count is below maxVolunteers, as a single
	// conditional update. maxVolunteers of 0 means no cap. Reports whether
	// the row was updated.
	AcceptApplicationWithinCapacity(ctx context.Context, applicationID string, maxVolunteers int, adminMessage string) (bool, error)
	// DecideApplication sets a pending application's status and admin
	// message, reporting whether the row was updated
	DecideApplication(ctx context.Context, applicationID, status, adminMessage string) (bool, error)
	// TransitionApplication sets the application status only when the
	// current status is one of allowedFrom, reporting whether a row was
	// updated
	TransitionApplication(ctx context.Context, applicationID, to string, allowedFrom ...string) (bool, error)
	DeleteApplicationsByEvent(ctx context.Context, eventID string) error
}

// HistoryStore defines the volunteer history operations
type HistoryStore interface {
	// GetHistoryEntry returns nil with a nil error when no entry exists
	GetHistoryEntry(ctx context.Context, id string) (*HistoryEntry, error)
	GetHistoryByVolunteer(ctx context.Context, volunteerID string) ([]HistoryEntry, error)
	// InsertHistoryEntry reports false without error when an entry already
	// exists for the (volunteer, event) pair
	InsertHistoryEntry(ctx context.Context, entry *HistoryEntry) (bool, error)
	SetHistoryFeedback(ctx context.Context, id, feedback string, rating int) error
}

// NotificationStore defines the notification write operation. Reads and
// mark-as-read belong to the UI layer, not the core.
type NotificationStore interface {
	InsertNotification(ctx context.Context, notification *Notification) error
}

// Store is the full persistence gateway contract, implemented by
// pkg/postgres
type Store interface {
	ProfileStore
	EventStore
	ApplicationStore
	HistoryStore
	NotificationStore
}
