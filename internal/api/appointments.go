package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"glowbook/internal/models"
)

type CreateAppointmentRequest struct {
	BusinessID string  `json:"businessId"`
	ServiceID  string  `json:"serviceId"`
	StaffID    *string `json:"staffId"`
	Date       string  `json:"date"` // RFC3339
}

func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodPost, "/appointments", req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// MyAppointments returns the appointments visible to the authenticated user.
// The backend scopes the result to the caller's role.
func (c *Client) MyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, "/appointments/my", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, appointmentPath(id, ""), nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// AvailableSlots lists every slot for the service on the given day, booked
// ones included, each carrying its availability flag.
func (c *Client) AvailableSlots(ctx context.Context, businessID, serviceID string, staffID *string, date time.Time) ([]models.Slot, error) {
	q := url.Values{}
	q.Set("businessId", businessID)
	q.Set("serviceId", serviceID)
	q.Set("date", date.Format("2006-01-02"))
	if staffID != nil && *staffID != "" {
		q.Set("staffId", *staffID)
	}

	var slots []models.Slot
	endpoint := "/appointments/available-slots?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ClaimAppointment assigns an unassigned appointment to the calling staff
// member. Losing a claim race surfaces as a conflict error.
func (c *Client) ClaimAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodPost, appointmentPath(id, "/claim"), nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateAppointmentStatus drives plain transitions: confirm and cancel.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	body := map[string]models.AppointmentStatus{"status": status}
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodPut, appointmentPath(id, "/status"), body, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// InitiateCompletion asks the backend to generate and send the completion OTP
// to the customer.
func (c *Client) InitiateCompletion(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, appointmentPath(id, "/initiate-completion"), nil, nil)
}

// VerifyCompletion submits the customer's OTP and, on success, moves the
// appointment to COMPLETED.
func (c *Client) VerifyCompletion(ctx context.Context, id, otp string) (*models.Appointment, error) {
	body := map[string]string{"otp": otp}
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodPost, appointmentPath(id, "/verify-completion"), body, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// MarkNoShow records that the customer never arrived.
func (c *Client) MarkNoShow(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.doJSON(ctx, http.MethodPost, appointmentPath(id, "/no-show"), nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// BusinessAppointments returns every appointment for a business the caller
// manages.
func (c *Client) BusinessAppointments(ctx context.Context, businessID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	endpoint := fmt.Sprintf("/appointments/%s", businessID)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
