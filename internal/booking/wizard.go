// Package booking implements the step-by-step flow a customer walks through
// to create an appointment: service, staff, date, time, then review and
// submit.
package booking

import (
	"context"
	"time"

	"glowbook/internal/api"
	"glowbook/internal/common/errors"
	"glowbook/internal/common/logger"
	"glowbook/internal/common/validation"
	"glowbook/internal/models"
	"glowbook/internal/schedule"
)

// Step numbers the wizard screens.
type Step int

const (
	StepService Step = iota + 1
	StepStaff
	StepDate
	StepTime
	StepReview
)

// API is the slice of the backend client the wizard needs.
type API interface {
	Me(ctx context.Context) (*models.User, error)
	UpdatePhone(ctx context.Context, phone string) error
	CreateAppointment(ctx context.Context, req api.CreateAppointmentRequest) (*models.Appointment, error)
}

// Wizard holds the in-progress booking for one business. Selections survive
// backward navigation; only a date change invalidates the chosen time.
type Wizard struct {
	api      API
	resolver *schedule.Resolver
	business *models.Business
	log      logger.Logger

	step    Step
	service *models.Service
	staff   *models.Staff // nil means no preference
	date    time.Time
	slots   schedule.SlotList
	slot    *models.Slot
	phone   string
}

func NewWizard(api API, resolver *schedule.Resolver, business *models.Business, log logger.Logger) *Wizard {
	return &Wizard{
		api:      api,
		resolver: resolver,
		business: business,
		log:      log,
		step:     StepService,
	}
}

func (w *Wizard) Step() Step { return w.step }

// Load prefills the stored phone number from the account.
func (w *Wizard) Load(ctx context.Context) error {
	user, err := w.api.Me(ctx)
	if err != nil {
		return err
	}
	w.phone = user.Phone
	return nil
}

func (w *Wizard) Phone() string { return w.phone }

// SetPhone overrides the prefilled number; it is validated at submit.
func (w *Wizard) SetPhone(phone string) { w.phone = phone }

// SelectService starts the flow over from the chosen service.
func (w *Wizard) SelectService(service *models.Service) error {
	if service == nil || !service.Active {
		return errors.NewValidationError(errors.ErrCodeFieldRequired, "select an active service")
	}
	w.service = service
	w.step = StepStaff
	return nil
}

// SelectStaff records a preferred member, or nil for no preference. A member
// not assigned to the chosen service is rejected.
func (w *Wizard) SelectStaff(staff *models.Staff) error {
	if w.step < StepStaff {
		return errors.NewValidationError(errors.ErrCodeStepOrder, "choose a service first")
	}
	if staff != nil {
		if staff.Status != models.StaffActive {
			return errors.NewValidationError(errors.ErrCodeFieldRequired, "that staff member is not active yet")
		}
		if !staff.CanPerform(w.service.ID) {
			return errors.NewValidationError(errors.ErrCodeFieldRequired, "that staff member does not offer this service")
		}
	}
	w.staff = staff
	w.step = StepDate
	return nil
}

// SelectDate fetches availability for the day. The fetch happens on every
// call, revisits included, so the slot grid never shows stale data; any
// previously chosen time is dropped.
func (w *Wizard) SelectDate(ctx context.Context, date time.Time) error {
	if w.step < StepDate {
		return errors.NewValidationError(errors.ErrCodeStepOrder, "choose a service first")
	}

	slots, err := w.resolver.Resolve(ctx, w.business.ID, w.service.ID, w.staffID(), date)
	if err != nil {
		return err
	}

	w.date = date
	w.slots = slots
	w.slot = nil
	w.step = StepTime
	return nil
}

// Slots exposes the day's availability for rendering.
func (w *Wizard) Slots() schedule.SlotList { return w.slots }

// SelectTime picks one of the day's bookable slots.
func (w *Wizard) SelectTime(at time.Time) error {
	if w.step < StepTime {
		return errors.NewValidationError(errors.ErrCodeStepOrder, "choose a date first")
	}
	if !w.slots.Contains(at) {
		return errors.NewValidationError(errors.ErrCodeFieldRequired, "that time is not available")
	}
	for i := range w.slots.Available {
		if w.slots.Available[i].Time.Equal(at) {
			w.slot = &w.slots.Available[i]
			break
		}
	}
	w.step = StepReview
	return nil
}

// Back moves one step toward the start. Selections made so far are kept.
func (w *Wizard) Back() {
	if w.step > StepService {
		w.step--
	}
}

// Summary is the review screen's data.
type Summary struct {
	Business *models.Business
	Service  *models.Service
	Staff    *models.Staff
	Time     time.Time
	Price    float64
}

// Summary returns the review data once every step is done.
func (w *Wizard) Summary() (*Summary, error) {
	if w.step != StepReview || w.slot == nil {
		return nil, errors.NewValidationError(errors.ErrCodeStepOrder, "booking is not ready to review")
	}
	return &Summary{
		Business: w.business,
		Service:  w.service,
		Staff:    w.staff,
		Time:     w.slot.Time,
		Price:    w.service.DisplayPrice(),
	}, nil
}

// Submit persists the phone number and creates the appointment. Validation
// failures and backend rejections leave the wizard on the review step so the
// user can correct and retry.
func (w *Wizard) Submit(ctx context.Context) (*models.Appointment, error) {
	if w.step != StepReview || w.slot == nil {
		return nil, errors.NewValidationError(errors.ErrCodeStepOrder, "booking is not ready to submit")
	}
	if err := validation.Phone(w.phone); err != nil {
		return nil, err
	}

	if err := w.api.UpdatePhone(ctx, w.phone); err != nil {
		return nil, err
	}

	appt, err := w.api.CreateAppointment(ctx, api.CreateAppointmentRequest{
		BusinessID: w.business.ID,
		ServiceID:  w.service.ID,
		StaffID:    w.staffID(),
		Date:       w.slot.Time.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	w.log.Info("appointment booked", map[string]interface{}{
		"appointment_id": appt.ID,
		"business_id":    w.business.ID,
	})
	return appt, nil
}

func (w *Wizard) staffID() *string {
	if w.staff == nil {
		return nil
	}
	return &w.staff.ID
}
