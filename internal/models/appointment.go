package models

import "time"

// AppointmentStatus tracks an appointment through its lifecycle.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// Terminal reports whether the status admits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked service visit. StaffID is nil while the
// appointment sits in the unassigned pool.
type Appointment struct {
	ID         string            `json:"id"`
	BusinessID string            `json:"businessId"`
	Business   *Business         `json:"business,omitempty"`
	ServiceID  string            `json:"serviceId"`
	Service    *Service          `json:"service,omitempty"`
	StaffID    *string           `json:"staffId"`
	Staff      *Staff            `json:"staff,omitempty"`
	CustomerID string            `json:"customerId"`
	Customer   *User             `json:"customer,omitempty"`
	Date       time.Time         `json:"date"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Assigned reports whether a staff member holds this appointment.
func (a *Appointment) Assigned() bool {
	return a.StaffID != nil && *a.StaffID != ""
}

// Upcoming reports whether the appointment is scheduled at or after now.
func (a *Appointment) Upcoming(now time.Time) bool {
	return !a.Date.Before(now)
}

// Slot is one bookable time on a given day.
type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}
