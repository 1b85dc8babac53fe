// Package lifecycle drives appointments through their state machine:
// claim, confirm, OTP-verified completion, no-show and cancellation.
package lifecycle

import (
	"context"
	goerrors "errors"

	"glowbook/internal/capability"
	"glowbook/internal/common/errors"
	"glowbook/internal/common/logger"
	"glowbook/internal/common/validation"
	"glowbook/internal/models"
)

// ErrAborted is returned when the user declines a confirmation prompt. No
// request is made in that case.
var ErrAborted = goerrors.New("action aborted")

// API is the slice of the backend client the driver needs.
type API interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ClaimAppointment(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
	InitiateCompletion(ctx context.Context, id string) error
	VerifyCompletion(ctx context.Context, id, otp string) (*models.Appointment, error)
	MarkNoShow(ctx context.Context, id string) (*models.Appointment, error)
}

// ConfirmFunc asks the user before a destructive action. Returning false
// aborts without touching the backend.
type ConfirmFunc func(action capability.Action, appt *models.Appointment) bool

// Driver runs lifecycle actions for one actor role.
type Driver struct {
	api     API
	role    models.Role
	confirm ConfirmFunc
	log     logger.Logger
}

// New builds a driver. confirm must not be nil; cancel and no-show refuse to
// run without a prompt.
func New(api API, role models.Role, confirm ConfirmFunc, log logger.Logger) *Driver {
	return &Driver{api: api, role: role, confirm: confirm, log: log}
}

// Claim picks an unassigned appointment off the pool. Losing the race to
// another staff member returns the backend's conflict along with a fresh copy
// of the appointment so the caller can drop it from the pool view.
func (d *Driver) Claim(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if err := capability.Check(d.role, capability.ActionClaim, appt); err != nil {
		return nil, err
	}

	updated, err := d.api.ClaimAppointment(ctx, appt.ID)
	if err != nil {
		if errors.IsConflict(err) {
			if fresh, fetchErr := d.api.GetAppointment(ctx, appt.ID); fetchErr == nil {
				return fresh, err
			}
		}
		return nil, err
	}

	d.log.Info("appointment claimed", map[string]interface{}{"appointment_id": appt.ID})
	return updated, nil
}

// Confirm moves a pending appointment to CONFIRMED.
func (d *Driver) Confirm(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if err := capability.Check(d.role, capability.ActionConfirm, appt); err != nil {
		return nil, err
	}
	return d.api.UpdateAppointmentStatus(ctx, appt.ID, models.StatusConfirmed)
}

// InitiateCompletion has the backend send the completion OTP to the customer.
func (d *Driver) InitiateCompletion(ctx context.Context, appt *models.Appointment) error {
	if err := capability.Check(d.role, capability.ActionInitiateCompletion, appt); err != nil {
		return err
	}
	return d.api.InitiateCompletion(ctx, appt.ID)
}

// VerifyCompletion submits the customer's OTP. Format problems are caught
// before the request; whether the code matches stays the backend's call.
func (d *Driver) VerifyCompletion(ctx context.Context, appt *models.Appointment, otp string) (*models.Appointment, error) {
	if err := capability.Check(d.role, capability.ActionVerifyCompletion, appt); err != nil {
		return nil, err
	}
	if err := validation.OTP(otp); err != nil {
		return nil, err
	}

	updated, err := d.api.VerifyCompletion(ctx, appt.ID, otp)
	if err != nil {
		return nil, err
	}
	d.log.Info("appointment completed", map[string]interface{}{"appointment_id": appt.ID})
	return updated, nil
}

// MarkNoShow records a missed visit after the user confirms.
func (d *Driver) MarkNoShow(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if err := capability.Check(d.role, capability.ActionNoShow, appt); err != nil {
		return nil, err
	}
	if !d.confirm(capability.ActionNoShow, appt) {
		return nil, ErrAborted
	}
	return d.api.MarkNoShow(ctx, appt.ID)
}

// Cancel moves the appointment to CANCELLED after the user confirms.
func (d *Driver) Cancel(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if err := capability.Check(d.role, capability.ActionCancel, appt); err != nil {
		return nil, err
	}
	if !d.confirm(capability.ActionCancel, appt) {
		return nil, ErrAborted
	}
	return d.api.UpdateAppointmentStatus(ctx, appt.ID, models.StatusCancelled)
}
