package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithdrawApplication(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("volunteer withdraws their pending application", func(t *testing.T) {
		store := newMockStore()
		seedPendingApplication(store, "app-1", "event-1", "vol-1")

		application, err := WithdrawApplication(ctx, store, logger, "app-1", "vol-1")
		require.NoError(t, err)

		assert.Equal(t, "canceled", application.Status)
		assert.Equal(t, "canceled", store.applications["app-1"].Status)
	})

	t.Run("someone else's application is forbidden", func(t *testing.T) {
		store := newMockStore()
		seedPendingApplication(store, "app-1", "event-1", "vol-1")

		_, err := WithdrawApplication(ctx, store, logger, "app-1", "vol-2")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, "pending", store.applications["app-1"].Status)
	})

	t.Run("accepted application cannot be withdrawn", func(t *testing.T) {
		store := newMockStore()
		application := seedPendingApplication(store, "app-1", "event-1", "vol-1")
		application.Status = "accepted"

		_, err := WithdrawApplication(ctx, store, logger, "app-1", "vol-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown application", func(t *testing.T) {
		store := newMockStore()

		_, err := WithdrawApplication(ctx, store, logger, "ghost", "vol-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
