package model

import (
	"fmt"
	"strings"
	"time"
)

// ProfileType distinguishes the three kinds of accounts
type ProfileType string

const (
	TypeVolunteer    ProfileType = "volunteer"
	TypeOrganization ProfileType = "organization"
	TypeAdmin        ProfileType = "admin"
)

func (t ProfileType) IsValid() bool {
	return t == TypeVolunteer || t == TypeOrganization || t == TypeAdmin
}

// CanManageEvents reports whether this profile type may create, publish,
// cancel, complete or delete events
func (t ProfileType) CanManageEvents() bool {
	return t == TypeOrganization || t == TypeAdmin
}

// ProfileStatus is the account standing of a profile
type ProfileStatus string

const (
	ProfileActive    ProfileStatus = "active"
	ProfileInactive  ProfileStatus = "inactive"
	ProfileSuspended ProfileStatus = "suspended"
)

func (s ProfileStatus) IsValid() bool {
	return s == ProfileActive || s == ProfileInactive || s == ProfileSuspended
}

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCanceled  EventStatus = "canceled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventDraft, EventPublished, EventCompleted, EventCanceled:
		return true
	}
	return false
}

// AcceptsApplications reports whether volunteers may apply to an event in
// this state
func (s EventStatus) AcceptsApplications() bool {
	return s == EventPublished
}

// CanTransitionTo reports whether the event status change is legal.
// draft -> published, published -> completed, draft/published -> canceled.
// completed and canceled are terminal.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventDraft:
		return next == EventPublished || next == EventCanceled
	case EventPublished:
		return next == EventCompleted || next == EventCanceled
	case EventCompleted, EventCanceled:
		return false
	}
	return false
}

// ApplicationStatus is the lifecycle state of a volunteer application
type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationAccepted   ApplicationStatus = "accepted"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationWaitlisted ApplicationStatus = "waitlisted"
	ApplicationCanceled   ApplicationStatus = "canceled"
	ApplicationCompleted  ApplicationStatus = "completed"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected,
		ApplicationWaitlisted, ApplicationCanceled, ApplicationCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationRejected || s == ApplicationCanceled || s == ApplicationCompleted
}

// CanTransitionTo reports whether the application status change is legal.
// pending -> accepted/rejected/waitlisted/canceled; accepted -> completed
// (the completion sweep only). Everything else is terminal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case ApplicationPending:
		return next == ApplicationAccepted || next == ApplicationRejected ||
			next == ApplicationWaitlisted || next == ApplicationCanceled
	case ApplicationAccepted:
		return next == ApplicationCompleted
	}
	return false
}

// Decision is an organization's verdict on a pending application
type Decision string

const (
	DecisionAccept   Decision = "accept"
	DecisionReject   Decision = "reject"
	DecisionWaitlist Decision = "waitlist"
)

func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject || d == DecisionWaitlist
}

// Status returns the application status a decision resolves to
func (d Decision) Status() ApplicationStatus {
	switch d {
	case DecisionAccept:
		return ApplicationAccepted
	case DecisionReject:
		return ApplicationRejected
	case DecisionWaitlist:
		return ApplicationWaitlisted
	}
	return ""
}

// ImportanceLevel is the weight an event places on a required skill
type ImportanceLevel int

const (
	ImportancePreferred ImportanceLevel = 1
	ImportanceImportant ImportanceLevel = 2
	ImportanceRequired  ImportanceLevel = 3
)

func (l ImportanceLevel) IsValid() bool {
	return l >= ImportancePreferred && l <= ImportanceRequired
}

// SkillRating is a volunteer's self-reported strength in one skill
type SkillRating struct {
	SkillID     string
	Proficiency int // 1..5
}

// SkillRequirement is one skill an event asks for, with its weight
type SkillRequirement struct {
	SkillID    string
	Importance ImportanceLevel
}

// TimeOfDay is a coarse recurring window within a day
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) IsValid() bool {
	return t == Morning || t == Afternoon || t == Evening
}

// AvailabilitySlot is one recurring window a volunteer is free
type AvailabilitySlot struct {
	DayOfWeek time.Weekday
	TimeOfDay TimeOfDay
}

func (s AvailabilitySlot) IsValid() bool {
	return s.DayOfWeek >= time.Sunday && s.DayOfWeek <= time.Saturday && s.TimeOfDay.IsValid()
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseAvailabilitySlot parses a "day:timeOfDay" value such as
// "monday:morning". Day names are case-insensitive.
func ParseAvailabilitySlot(value string) (AvailabilitySlot, error) {
	dayName, window, found := strings.Cut(value, ":")
	if !found {
		return AvailabilitySlot{}, fmt.Errorf("invalid availability %q: expected day:timeOfDay", value)
	}

	day, ok := weekdays[strings.ToLower(dayName)]
	if !ok {
		return AvailabilitySlot{}, fmt.Errorf("invalid day %q in availability %q", dayName, value)
	}

	timeOfDay := TimeOfDay(strings.ToLower(window))
	if !timeOfDay.IsValid() {
		return AvailabilitySlot{}, fmt.Errorf("invalid time of day %q in availability %q", window, value)
	}

	return AvailabilitySlot{DayOfWeek: day, TimeOfDay: timeOfDay}, nil
}
