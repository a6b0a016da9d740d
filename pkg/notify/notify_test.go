package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

type mockNotificationStore struct {
	inserted []db.Notification
	err      error
}

func (m *mockNotificationStore) InsertNotification(ctx context.Context, notification *db.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, *notification)
	return nil
}

type mockEmailSender struct {
	sent []string
	err  error
}

func (m *mockEmailSender) SendEmail(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

type mockDirectory struct {
	profiles map[string]*db.Profile
}

func (m *mockDirectory) GetProfile(ctx context.Context, id string) (*db.Profile, error) {
	return m.profiles[id], nil
}

func TestStoreSink(t *testing.T) {
	store := &mockNotificationStore{}
	s := NewStoreSink(store)

	err := s.Notify(context.Background(), db.Notification{ID: "n1", RecipientID: "vol-1"})
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "vol-1", store.inserted[0].RecipientID)
}

func TestEmailSink(t *testing.T) {
	t.Run("sends to recipient with email", func(t *testing.T) {
		sender := &mockEmailSender{}
		directory := &mockDirectory{profiles: map[string]*db.Profile{
			"vol-1": {ID: "vol-1", Email: "vol@example.com"},
		}}
		s := NewEmailSink(sender, directory, zap.NewNop())

		err := s.Notify(context.Background(), db.Notification{RecipientID: "vol-1", Title: "Decision"})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "vol@example.com", sender.sent[0])
	})

	t.Run("skips recipient without email", func(t *testing.T) {
		sender := &mockEmailSender{}
		directory := &mockDirectory{profiles: map[string]*db.Profile{
			"vol-1": {ID: "vol-1"},
		}}
		s := NewEmailSink(sender, directory, zap.NewNop())

		err := s.Notify(context.Background(), db.Notification{RecipientID: "vol-1"})
		require.NoError(t, err)
		assert.Empty(t, sender.sent)
	})

	t.Run("skips unknown recipient", func(t *testing.T) {
		sender := &mockEmailSender{}
		directory := &mockDirectory{profiles: map[string]*db.Profile{}}
		s := NewEmailSink(sender, directory, zap.NewNop())

		err := s.Notify(context.Background(), db.Notification{RecipientID: "missing"})
		require.NoError(t, err)
		assert.Empty(t, sender.sent)
	})
}

func TestFanoutSink(t *testing.T) {
	t.Run("attempts all sinks despite failure", func(t *testing.T) {
		failing := &mockNotificationStore{err: errors.New("db down")}
		working := &mockNotificationStore{}
		f := NewFanoutSink(zap.NewNop(), NewStoreSink(failing), NewStoreSink(working))

		err := f.Notify(context.Background(), db.Notification{ID: "n1"})
		assert.Error(t, err)
		assert.Len(t, working.inserted, 1)
	})

	t.Run("no error when all sinks succeed", func(t *testing.T) {
		a := &mockNotificationStore{}
		b := &mockNotificationStore{}
		f := NewFanoutSink(zap.NewNop(), NewStoreSink(a), NewStoreSink(b))

		err := f.Notify(context.Background(), db.Notification{ID: "n1"})
		require.NoError(t, err)
		assert.Len(t, a.inserted, 1)
		assert.Len(t, b.inserted, 1)
	})
}
