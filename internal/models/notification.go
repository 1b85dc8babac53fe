package models

import "time"

// NotificationType mirrors the event names the backend emits.
type NotificationType string

const (
	NotifyAppointmentBooked    NotificationType = "APPOINTMENT_BOOKED"
	NotifyAppointmentAssigned  NotificationType = "APPOINTMENT_ASSIGNED"
	NotifyAppointmentConfirmed NotificationType = "APPOINTMENT_CONFIRMED"
	NotifyAppointmentCancelled NotificationType = "APPOINTMENT_CANCELLED"
	NotifyAppointmentCompleted NotificationType = "APPOINTMENT_COMPLETED"
	NotifyAppointmentNoShow    NotificationType = "APPOINTMENT_NO_SHOW"
	NotifyStaffInvited         NotificationType = "STAFF_INVITED"
	NotifyStaffClaimed         NotificationType = "STAFF_CLAIMED"
	NotifyReviewReceived       NotificationType = "REVIEW_RECEIVED"
)

// Notification is one inbox entry for a user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
