package notify

import (
	"context"
	"sync"

	"glowbook/internal/common/logger"
	"glowbook/internal/common/metrics"
	"glowbook/internal/models"
)

// BootstrapLimit caps the initial inbox fetch.
const BootstrapLimit = 20

// API is the slice of the backend client the store needs.
type API interface {
	Notifications(ctx context.Context, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

// Store is the local inbox. Mutations go to the backend first and only then
// touch local state, so the copy never runs ahead of the server.
type Store struct {
	api API
	log logger.Logger

	mu            sync.RWMutex
	notifications []models.Notification
	unread        int
}

func NewStore(api API, log logger.Logger) *Store {
	return &Store{api: api, log: log}
}

// Bootstrap loads the newest entries and the unread count.
func (s *Store) Bootstrap(ctx context.Context) error {
	notifications, err := s.api.Notifications(ctx, BootstrapLimit)
	if err != nil {
		return err
	}
	unread, err := s.api.UnreadCount(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.notifications = notifications
	s.unread = unread
	s.mu.Unlock()
	return nil
}

// Apply folds one push event into local state. It is the single reducer for
// the push channel; nothing else mutates state from events.
func (s *Store) Apply(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Kind {
	case EventNewNotification:
		// Newest first. Duplicate delivery after a reconnect is dropped.
		for _, existing := range s.notifications {
			if existing.ID == event.Notification.ID {
				return
			}
		}
		s.notifications = append([]models.Notification{*event.Notification}, s.notifications...)
		if !event.Notification.Read {
			s.unread++
		}

	case EventUnreadCount:
		// The server's count wins over local bookkeeping.
		s.unread = event.UnreadCount
	}

	metrics.PushEventsApplied.WithLabelValues(string(event.Kind)).Inc()
}

// Run consumes the channel until it closes.
func (s *Store) Run(events <-chan Event) {
	for event := range events {
		s.Apply(event)
	}
}

// Notifications returns a copy of the current inbox, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Unread returns the current badge count.
func (s *Store) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// MarkRead marks one entry read, backend first.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].Read {
			s.notifications[i].Read = true
			if s.unread > 0 {
				s.unread--
			}
		}
	}
	return nil
}

// MarkAllRead clears the badge, backend first.
func (s *Store) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.unread = 0
	return nil
}

// Delete removes one entry, backend first. Deleting an unread entry also
// drops the badge count.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteNotification(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read && s.unread > 0 {
				s.unread--
			}
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			break
		}
	}
	return nil
}
