package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowbook/internal/models"
)

func TestParseEventNewNotification(t *testing.T) {
	raw := []byte(`{
		"event": "new_notification",
		"payload": {
			"id": "n1",
			"userId": "u1",
			"type": "APPOINTMENT_CONFIRMED",
			"title": "Confirmed",
			"message": "Your appointment was confirmed",
			"read": false
		}
	}`)

	event, err := ParseEvent(raw)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, EventNewNotification, event.Kind)
	assert.Equal(t, "n1", event.Notification.ID)
	assert.False(t, event.Notification.Read)
}

func TestNotificationTypesMatchBackendValues(t *testing.T) {
	// Typed comparisons against pushed payloads only work when the constants
	// carry the exact strings the backend emits.
	tests := []struct {
		wire string
		want models.NotificationType
	}{
		{wire: "APPOINTMENT_BOOKED", want: models.NotifyAppointmentBooked},
		{wire: "APPOINTMENT_ASSIGNED", want: models.NotifyAppointmentAssigned},
		{wire: "APPOINTMENT_CONFIRMED", want: models.NotifyAppointmentConfirmed},
		{wire: "APPOINTMENT_CANCELLED", want: models.NotifyAppointmentCancelled},
		{wire: "APPOINTMENT_COMPLETED", want: models.NotifyAppointmentCompleted},
		{wire: "APPOINTMENT_NO_SHOW", want: models.NotifyAppointmentNoShow},
		{wire: "STAFF_INVITED", want: models.NotifyStaffInvited},
		{wire: "STAFF_CLAIMED", want: models.NotifyStaffClaimed},
		{wire: "REVIEW_RECEIVED", want: models.NotifyReviewReceived},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			raw := fmt.Sprintf(`{"event":"new_notification","payload":{"id":"n1","type":%q,"message":"m"}}`, tt.wire)
			event, err := ParseEvent([]byte(raw))
			require.NoError(t, err)
			require.NotNil(t, event)
			assert.Equal(t, tt.want, event.Notification.Type)
		})
	}
}

func TestParseEventUnreadCount(t *testing.T) {
	event, err := ParseEvent([]byte(`{"event":"unread_count","payload":3}`))
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, EventUnreadCount, event.Kind)
	assert.Equal(t, 3, event.UnreadCount)
}

func TestParseEventRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "notification missing id", raw: `{"event":"new_notification","payload":{"type":"X","message":"m"}}`},
		{name: "negative unread count", raw: `{"event":"unread_count","payload":-1}`},
		{name: "unread count not a number", raw: `{"event":"unread_count","payload":"three"}`},
		{name: "not json", raw: `garbage`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvent([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseEventIgnoresUnknownEvents(t *testing.T) {
	event, err := ParseEvent([]byte(`{"event":"typing_indicator","payload":{}}`))
	require.NoError(t, err)
	assert.Nil(t, event)
}
