// Package capability decides which appointment actions a role may attempt.
// The backend enforces the same rules; these checks exist so denials surface
// before a request is made.
package capability

import (
	"time"

	"glowbook/internal/common/errors"
	"glowbook/internal/models"
)

// Action is a lifecycle operation on an appointment.
type Action string

const (
	ActionClaim              Action = "claim"
	ActionConfirm            Action = "confirm"
	ActionInitiateCompletion Action = "initiate-completion"
	ActionVerifyCompletion   Action = "verify-completion"
	ActionNoShow             Action = "no-show"
	ActionCancel             Action = "cancel"
)

// Check returns nil when the role may attempt the action on the appointment,
// otherwise a conflict error describing the denial.
func Check(role models.Role, action Action, appt *models.Appointment) error {
	if appt.Status.Terminal() {
		return errors.NewTerminalStateError(string(appt.Status))
	}

	if allowed(role, action, appt) {
		return nil
	}
	return errors.NewPermissionError(string(role), string(action))
}

// Can is the boolean form of Check.
func Can(role models.Role, action Action, appt *models.Appointment) bool {
	return Check(role, action, appt) == nil
}

func allowed(role models.Role, action Action, appt *models.Appointment) bool {
	switch action {
	case ActionClaim:
		// Only staff pick up from the unassigned pool.
		return role == models.RoleStaff && !appt.Assigned() && appt.Status == models.StatusPending

	case ActionConfirm:
		return managesBusiness(role) && appt.Status == models.StatusPending

	case ActionInitiateCompletion, ActionVerifyCompletion, ActionNoShow:
		return managesBusiness(role) && appt.Status == models.StatusConfirmed

	case ActionCancel:
		if role == models.RoleCustomer {
			// Customers cancel only while the visit is still ahead.
			return appt.Upcoming(time.Now())
		}
		return managesBusiness(role) && appt.Status == models.StatusPending
	}
	return false
}

func managesBusiness(role models.Role) bool {
	return role == models.RoleStaff || role == models.RoleOwner
}
