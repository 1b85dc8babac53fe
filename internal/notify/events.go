// Package notify keeps a live, locally-consistent copy of the user's
// notification inbox, fed by the backend's push channel.
package notify

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"glowbook/internal/models"
)

// EventKind names the push events the backend emits.
type EventKind string

const (
	EventNewNotification EventKind = "new_notification"
	EventUnreadCount     EventKind = "unread_count"
)

// Event is one decoded push frame.
type Event struct {
	Kind         EventKind
	Notification *models.Notification // set for new_notification
	UnreadCount  int                  // set for unread_count
}

// frame is the wire shape: an event name plus a raw payload.
type frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

var (
	notificationSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"userId": {"type": "string"},
			"type": {"type": "string"},
			"title": {"type": "string"},
			"message": {"type": "string"},
			"read": {"type": "boolean"}
		},
		"required": ["id", "type", "message"]
	}`)

	unreadCountSchema = gojsonschema.NewStringLoader(`{
		"type": "integer",
		"minimum": 0
	}`)
)

// ParseEvent decodes and validates one frame from the push channel. Frames
// with unknown event names are ignored by returning a nil event.
func ParseEvent(raw []byte) (*Event, error) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode push frame: %w", err)
	}

	switch EventKind(f.Event) {
	case EventNewNotification:
		if err := validatePayload(notificationSchema, f.Payload); err != nil {
			return nil, err
		}
		var notification models.Notification
		if err := json.Unmarshal(f.Payload, &notification); err != nil {
			return nil, fmt.Errorf("decode notification payload: %w", err)
		}
		return &Event{Kind: EventNewNotification, Notification: &notification}, nil

	case EventUnreadCount:
		if err := validatePayload(unreadCountSchema, f.Payload); err != nil {
			return nil, err
		}
		var count int
		if err := json.Unmarshal(f.Payload, &count); err != nil {
			return nil, fmt.Errorf("decode unread count payload: %w", err)
		}
		return &Event{Kind: EventUnreadCount, UnreadCount: count}, nil
	}

	return nil, nil
}

func validatePayload(schema gojsonschema.JSONLoader, payload json.RawMessage) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("validate push payload: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("push payload rejected: %v", result.Errors())
	}
	return nil
}
