package schedule

import (
	"context"
	"time"

	"glowbook/internal/common/errors"
	"glowbook/internal/models"
)

// SlotSource is the backend call the resolver wraps.
type SlotSource interface {
	AvailableSlots(ctx context.Context, businessID, serviceID string, staffID *string, date time.Time) ([]models.Slot, error)
}

// SlotList carries everything the backend returned for a day plus the
// bookable subset.
type SlotList struct {
	All       []models.Slot
	Available []models.Slot
}

// Empty reports that the business offers no slots that day at all.
func (l SlotList) Empty() bool { return len(l.All) == 0 }

// FullyBooked reports that slots exist but every one is taken. Distinct from
// Empty so callers can say "closed" versus "booked out".
func (l SlotList) FullyBooked() bool { return len(l.All) > 0 && len(l.Available) == 0 }

// Contains reports whether t is one of the bookable times.
func (l SlotList) Contains(t time.Time) bool {
	for _, slot := range l.Available {
		if slot.Time.Equal(t) {
			return true
		}
	}
	return false
}

// Resolver fetches and classifies day availability.
type Resolver struct {
	source SlotSource
	now    func() time.Time
}

func NewResolver(source SlotSource) *Resolver {
	return &Resolver{source: source, now: time.Now}
}

// Resolve returns the slot list for the given day. Days before today are
// rejected without a request.
func (r *Resolver) Resolve(ctx context.Context, businessID, serviceID string, staffID *string, date time.Time) (SlotList, error) {
	year, month, day := r.now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return SlotList{}, errors.NewValidationError(errors.ErrCodeDateInPast, "cannot book a date in the past")
	}

	all, err := r.source.AvailableSlots(ctx, businessID, serviceID, staffID, date)
	if err != nil {
		return SlotList{}, err
	}

	list := SlotList{All: all}
	for _, slot := range all {
		if slot.Available {
			list.Available = append(list.Available, slot)
		}
	}
	return list, nil
}
