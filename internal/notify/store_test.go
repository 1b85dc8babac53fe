package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowbook/internal/common/errors"
	"glowbook/internal/common/logger"
	"glowbook/internal/models"
)

type fakeInboxAPI struct {
	notifications []models.Notification
	unread        int
	calls         []string
	failNext      error
}

func (f *fakeInboxAPI) Notifications(ctx context.Context, limit int) ([]models.Notification, error) {
	f.calls = append(f.calls, "list")
	if limit < len(f.notifications) {
		return f.notifications[:limit], nil
	}
	return f.notifications, nil
}

func (f *fakeInboxAPI) UnreadCount(ctx context.Context) (int, error) {
	f.calls = append(f.calls, "count")
	return f.unread, nil
}

func (f *fakeInboxAPI) MarkNotificationRead(ctx context.Context, id string) error {
	f.calls = append(f.calls, "read:"+id)
	return f.failNext
}

func (f *fakeInboxAPI) MarkAllNotificationsRead(ctx context.Context) error {
	f.calls = append(f.calls, "read-all")
	return f.failNext
}

func (f *fakeInboxAPI) DeleteNotification(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.failNext
}

func notification(id string, read bool) models.Notification {
	return models.Notification{ID: id, Type: models.NotifyAppointmentBooked, Message: "m", Read: read}
}

func TestBootstrap(t *testing.T) {
	api := &fakeInboxAPI{
		notifications: []models.Notification{notification("n1", false), notification("n2", true)},
		unread:        1,
	}
	store := NewStore(api, logger.NewNoOpLogger())

	require.NoError(t, store.Bootstrap(context.Background()))
	assert.Len(t, store.Notifications(), 2)
	assert.Equal(t, 1, store.Unread())
}

func TestApplyNewNotificationPrepends(t *testing.T) {
	store := NewStore(&fakeInboxAPI{}, logger.NewNoOpLogger())
	first := notification("n1", false)
	second := notification("n2", false)

	store.Apply(Event{Kind: EventNewNotification, Notification: &first})
	store.Apply(Event{Kind: EventNewNotification, Notification: &second})

	inbox := store.Notifications()
	require.Len(t, inbox, 2)
	assert.Equal(t, "n2", inbox[0].ID)
	assert.Equal(t, 2, store.Unread())
}

func TestApplyDropsDuplicateDelivery(t *testing.T) {
	store := NewStore(&fakeInboxAPI{}, logger.NewNoOpLogger())
	entry := notification("n1", false)

	store.Apply(Event{Kind: EventNewNotification, Notification: &entry})
	store.Apply(Event{Kind: EventNewNotification, Notification: &entry})

	assert.Len(t, store.Notifications(), 1)
	assert.Equal(t, 1, store.Unread())
}

func TestApplyUnreadCountWins(t *testing.T) {
	store := NewStore(&fakeInboxAPI{}, logger.NewNoOpLogger())
	entry := notification("n1", false)
	store.Apply(Event{Kind: EventNewNotification, Notification: &entry})

	store.Apply(Event{Kind: EventUnreadCount, UnreadCount: 7})
	assert.Equal(t, 7, store.Unread())
}

func TestMarkReadBackendFirst(t *testing.T) {
	api := &fakeInboxAPI{notifications: []models.Notification{notification("n1", false)}, unread: 1}
	store := NewStore(api, logger.NewNoOpLogger())
	require.NoError(t, store.Bootstrap(context.Background()))

	require.NoError(t, store.MarkRead(context.Background(), "n1"))
	assert.True(t, store.Notifications()[0].Read)
	assert.Zero(t, store.Unread())
	assert.Contains(t, api.calls, "read:n1")
}

func TestMarkReadKeepsLocalStateOnBackendFailure(t *testing.T) {
	api := &fakeInboxAPI{notifications: []models.Notification{notification("n1", false)}, unread: 1}
	store := NewStore(api, logger.NewNoOpLogger())
	require.NoError(t, store.Bootstrap(context.Background()))

	api.failNext = errors.NewTransportError(assert.AnError)
	require.Error(t, store.MarkRead(context.Background(), "n1"))
	assert.False(t, store.Notifications()[0].Read)
	assert.Equal(t, 1, store.Unread())
}

func TestDeleteUnreadDropsBadge(t *testing.T) {
	api := &fakeInboxAPI{
		notifications: []models.Notification{notification("n1", false), notification("n2", true)},
		unread:        1,
	}
	store := NewStore(api, logger.NewNoOpLogger())
	require.NoError(t, store.Bootstrap(context.Background()))

	require.NoError(t, store.Delete(context.Background(), "n1"))
	assert.Len(t, store.Notifications(), 1)
	assert.Zero(t, store.Unread())

	// Deleting a read entry leaves the badge alone.
	require.NoError(t, store.Delete(context.Background(), "n2"))
	assert.Empty(t, store.Notifications())
	assert.Zero(t, store.Unread())
}

func TestMarkAllRead(t *testing.T) {
	api := &fakeInboxAPI{
		notifications: []models.Notification{notification("n1", false), notification("n2", false)},
		unread:        2,
	}
	store := NewStore(api, logger.NewNoOpLogger())
	require.NoError(t, store.Bootstrap(context.Background()))

	require.NoError(t, store.MarkAllRead(context.Background()))
	for _, entry := range store.Notifications() {
		assert.True(t, entry.Read)
	}
	assert.Zero(t, store.Unread())
}
