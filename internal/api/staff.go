package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"glowbook/internal/common/errors"
	"glowbook/internal/models"
)

type InviteStaffRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Title      string   `json:"title,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
}

// InviteStaff creates a pending staff record and triggers the invitation
// email.
func (c *Client) InviteStaff(ctx context.Context, businessID string, req InviteStaffRequest) (*models.Staff, error) {
	var staff models.Staff
	endpoint := fmt.Sprintf("/businesses/%s/staff", businessID)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (c *Client) ListStaff(ctx context.Context, businessID string) ([]models.Staff, error) {
	var staff []models.Staff
	endpoint := fmt.Sprintf("/businesses/%s/staff", businessID)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// MyStaffProfile returns the staff record bound to the signed-in account.
func (c *Client) MyStaffProfile(ctx context.Context) (*models.Staff, error) {
	var staff models.Staff
	if err := c.doJSON(ctx, http.MethodGet, "/staff/me", nil, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (c *Client) GetStaff(ctx context.Context, staffID string) (*models.Staff, error) {
	var staff models.Staff
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/staff/%s", staffID), nil, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// StaffAppointments returns the signed-in staff member's queue: their own
// appointments plus the business's unassigned pool.
func (c *Client) StaffAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, "/staff/appointments", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

type UpdateStaffRequest struct {
	Title           string   `json:"title,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ServiceIDs      []string `json:"serviceIds,omitempty"`
}

func (c *Client) UpdateStaff(ctx context.Context, staffID string, req UpdateStaffRequest) (*models.Staff, error) {
	var staff models.Staff
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/staff/%s", staffID), req, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (c *Client) RemoveStaff(ctx context.Context, staffID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/staff/%s", staffID), nil, nil)
}

// AttachStaffImage uploads a profile photo. Multipart, so the content type
// comes from the writer, not set by hand.
func (c *Client) AttachStaffImage(ctx context.Context, staffID, filename string, image io.Reader) (*models.Staff, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, errors.NewTransportError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.NewTransportError(err)
	}

	endpoint := fmt.Sprintf("/staff/%s/images", staffID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var staff models.Staff
	if err := c.do(httpReq, endpoint, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}
