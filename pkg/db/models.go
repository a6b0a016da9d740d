package db

import "time"

// Profile represents a database profile record
type Profile struct {
	ID          string
	DisplayName string
	Type        string // volunteer, organization, admin
	Status      string // active, inactive, suspended
	Email       string
	Phone       string
	CreatedAt   time.Time
}

// Skill represents one volunteer skill record
type Skill struct {
	ProfileID   string
	SkillID     string
	Proficiency int // 1..5
}

// Availability represents one recurring window a volunteer is free.
// DayOfWeek follows time.Weekday numbering, Sunday is 0.
type Availability struct {
	ProfileID string
	DayOfWeek int
	TimeOfDay string // morning, afternoon, evening
}

// Event represents a database event record
type Event struct {
	ID            string
	CreatorID     string
	Title         string
	Description   string
	Location      string
	StartsAt      time.Time
	EndsAt        time.Time
	MinVolunteers int
	MaxVolunteers int // 0 means no cap
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EventSkill represents one skill requirement of an event
type EventSkill struct {
	EventID    string
	SkillID    string
	Importance int // 1..3
}

// Application represents a database application record.
// One row exists per (event_id, volunteer_id) pair.
type Application struct {
	ID           string
	EventID      string
	VolunteerID  string
	Status       string
	Message      string
	AdminMessage string
	MatchScore   int // 0..100, fixed at submission time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryEntry represents a database volunteer history record.
// One row exists per (volunteer_id, event_id) pair, created by the
// completion sweep.
type HistoryEntry struct {
	ID          string
	VolunteerID string
	EventID     string
	HoursLogged float64
	Feedback    string
	Rating      int // 1..5, 0 when not yet rated
	CreatedAt   time.Time
}

// Notification represents a database notification record
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string // empty for system notifications
	Type        string
	Title       string
	Message     string
	Link        string
	IsRead      bool
	CreatedAt   time.Time
}
