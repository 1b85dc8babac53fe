package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"glowbook/internal/common/errors"
	"glowbook/internal/models"
)

type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount,omitempty"`
	Duration    int     `json:"duration"`
}

func (c *Client) CreateService(ctx context.Context, businessID string, req ServiceRequest) (*models.Service, error) {
	var svc models.Service
	endpoint := fmt.Sprintf("/businesses/%s/services", businessID)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (c *Client) UpdateService(ctx context.Context, serviceID string, req ServiceRequest) (*models.Service, error) {
	var svc models.Service
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/services/%s", serviceID), req, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (c *Client) DeleteService(ctx context.Context, serviceID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/services/%s", serviceID), nil, nil)
}

// AttachServiceImage uploads a service photo. The request is multipart; the
// content type comes from the multipart writer, never set by hand.
func (c *Client) AttachServiceImage(ctx context.Context, serviceID, filename string, image io.Reader, req ServiceRequest) (*models.Service, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, errors.NewTransportError(err)
	}

	fields := map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"price":       strconv.FormatFloat(req.Price, 'f', -1, 64),
		"discount":    strconv.FormatFloat(req.Discount, 'f', -1, 64),
		"duration":    strconv.Itoa(req.Duration),
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, errors.NewTransportError(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.NewTransportError(err)
	}

	endpoint := fmt.Sprintf("/services/%s/image", serviceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var svc models.Service
	if err := c.do(httpReq, endpoint, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}
