package api

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/internal/models"
)

type notificationsEnvelope struct {
	Notifications []models.Notification `json:"notifications"`
}

type countEnvelope struct {
	Count int `json:"count"`
}

// Notifications returns the newest entries, capped at limit.
func (c *Client) Notifications(ctx context.Context, limit int) ([]models.Notification, error) {
	var envelope notificationsEnvelope
	endpoint := fmt.Sprintf("/notifications?limit=%d", limit)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Notifications, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var envelope countEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/notifications/unread-count", nil, &envelope); err != nil {
		return 0, err
	}
	return envelope.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/notifications/%s/read", id), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%s", id), nil, nil)
}
