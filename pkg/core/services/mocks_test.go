package services

import (
	"context"
	"sort"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// mockStore is an in-memory stand-in for the persistence gateway. Each test
// seeds only the collections it needs; the error fields force failures on
// specific operations.
type mockStore struct {
	profiles     map[string]*db.Profile
	skills       map[string][]db.Skill
	events       map[string]*db.Event
	eventSkills  map[string][]db.EventSkill
	applications map[string]*db.Application
	history      map[string]*db.HistoryEntry

	// deletions records delete calls in order for cascade assertions
	deletions []string

	insertHistoryErrFor map[string]error // keyed by volunteer ID
}

func newMockStore() *mockStore {
	return &mockStore{
		profiles:     make(map[string]*db.Profile),
		skills:       make(map[string][]db.Skill),
		events:       make(map[string]*db.Event),
		eventSkills:  make(map[string][]db.EventSkill),
		applications: make(map[string]*db.Application),
		history:      make(map[string]*db.HistoryEntry),
	}
}

func (m *mockStore) GetProfile(ctx context.Context, id string) (*db.Profile, error) {
	return m.profiles[id], nil
}

func (m *mockStore) InsertProfile(ctx context.Context, profile *db.Profile) error {
	m.profiles[profile.ID] = profile
	return nil
}

func (m *mockStore) GetSkills(ctx context.Context, profileID string) ([]db.Skill, error) {
	return m.skills[profileID], nil
}

func (m *mockStore) InsertSkills(ctx context.Context, skills []db.Skill) error {
	for _, s := range skills {
		m.skills[s.ProfileID] = append(m.skills[s.ProfileID], s)
	}
	return nil
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*db.Event, error) {
	return m.events[id], nil
}

func (m *mockStore) GetPublishedEvents(ctx context.Context) ([]db.Event, error) {
	var events []db.Event
	for _, e := range m.events {
		if e.Status == "published" {
			events = append(events, *e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (m *mockStore) GetEventSkills(ctx context.Context, eventID string) ([]db.EventSkill, error) {
	return m.eventSkills[eventID], nil
}

func (m *mockStore) InsertEvent(ctx context.Context, event *db.Event) error {
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockStore) UpdateEvent(ctx context.Context, event *db.Event) error {
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockStore) InsertEventSkills(ctx context.Context, skills []db.EventSkill) error {
	for _, s := range skills {
		m.eventSkills[s.EventID] = append(m.eventSkills[s.EventID], s)
	}
	return nil
}

func (m *mockStore) TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error) {
	event, ok := m.events[eventID]
	if !ok {
		return false, nil
	}
	for _, from := range allowedFrom {
		if event.Status == from {
			event.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) DeleteEventSkills(ctx context.Context, eventID string) error {
	delete(m.eventSkills, eventID)
	m.deletions = append(m.deletions, "event_skills")
	return nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, eventID string) error {
	delete(m.events, eventID)
	m.deletions = append(m.deletions, "event")
	return nil
}

func (m *mockStore) GetApplication(ctx context.Context, id string) (*db.Application, error) {
	return m.applications[id], nil
}

func (m *mockStore) GetApplicationByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*db.Application, error) {
	for _, a := range m.applications {
		if a.EventID == eventID && a.VolunteerID == volunteerID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetApplicationsByEvent(ctx context.Context, eventID string) ([]db.Application, error) {
	var apps []db.Application
	for _, a := range m.applications {
		if a.EventID == eventID {
			apps = append(apps, *a)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}

func (m *mockStore) GetApplicationsByEventAndStatus(ctx context.Context, eventID, status string) ([]db.Application, error) {
	var apps []db.Application
	for _, a := range m.applications {
		if a.EventID == eventID && a.Status == status {
			apps = append(apps, *a)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}

func (m *mockStore) InsertApplication(ctx context.Context, application *db.Application) error {
	for _, a := range m.applications {
		if a.EventID == application.EventID && a.VolunteerID == application.VolunteerID {
			return db.ErrDuplicate
		}
	}
	copied := *application
	m.applications[application.ID] = &copied
	return nil
}

func (m *mockStore) AcceptApplicationWithinCapacity(ctx context.Context, applicationID string, maxVolunteers int, adminMessage string) (bool, error) {
	application, ok := m.applications[applicationID]
	if !ok || application.Status != "pending" {
		return false, nil
	}
	if maxVolunteers > 0 {
		accepted := 0
		for _, a := range m.applications {
			if a.EventID == application.EventID && a.Status == "accepted" {
				accepted++
			}
		}
		if accepted >= maxVolunteers {
			return false, nil
		}
	}
	application.Status = "accepted"
	application.AdminMessage = adminMessage
	return true, nil
}

func (m *mockStore) DecideApplication(ctx context.Context, applicationID, status, adminMessage string) (bool, error) {
	application, ok := m.applications[applicationID]
	if !ok || application.Status != "pending" {
		return false, nil
	}
	application.Status = status
	application.AdminMessage = adminMessage
	return true, nil
}

func (m *mockStore) TransitionApplication(ctx context.Context, applicationID, to string, allowedFrom ...string) (bool, error) {
	application, ok := m.applications[applicationID]
	if !ok {
		return false, nil
	}
	for _, from := range allowedFrom {
		if application.Status == from {
			application.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) DeleteApplicationsByEvent(ctx context.Context, eventID string) error {
	for id, a := range m.applications {
		if a.EventID == eventID {
			delete(m.applications, id)
		}
	}
	m.deletions = append(m.deletions, "applications")
	return nil
}

func (m *mockStore) GetHistoryEntry(ctx context.Context, id string) (*db.HistoryEntry, error) {
	return m.history[id], nil
}

func (m *mockStore) GetHistoryByVolunteer(ctx context.Context, volunteerID string) ([]db.HistoryEntry, error) {
	var entries []db.HistoryEntry
	for _, e := range m.history {
		if e.VolunteerID == volunteerID {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (m *mockStore) InsertHistoryEntry(ctx context.Context, entry *db.HistoryEntry) (bool, error) {
	if err := m.insertHistoryErrFor[entry.VolunteerID]; err != nil {
		return false, err
	}
	for _, e := range m.history {
		if e.VolunteerID == entry.VolunteerID && e.EventID == entry.EventID {
			return false, nil
		}
	}
	copied := *entry
	m.history[entry.ID] = &copied
	return true, nil
}

func (m *mockStore) SetHistoryFeedback(ctx context.Context, id, feedback string, rating int) error {
	entry, ok := m.history[id]
	if !ok {
		return nil
	}
	entry.Feedback = feedback
	entry.Rating = rating
	return nil
}

func (m *mockStore) InsertNotification(ctx context.Context, notification *db.Notification) error {
	return nil
}

// mockSink records delivered notifications, optionally failing for a
// specific recipient
type mockSink struct {
	delivered  []db.Notification
	failFor    string
	failForErr error
}

func (m *mockSink) Notify(ctx context.Context, notification db.Notification) error {
	if m.failFor != "" && notification.RecipientID == m.failFor {
		return m.failForErr
	}
	m.delivered = append(m.delivered, notification)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{DatabaseURL: "postgres://test"}
	cfg.ApplyDefaults()
	return cfg
}
