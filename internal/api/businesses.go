package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"glowbook/internal/models"
)

// BusinessFilter narrows the directory listing. The backend returns the
// full directory; filtering happens here, matching the discovery page.
type BusinessFilter struct {
	Category string
	City     string
	Search   string
}

// Matches applies the filter to one listing. Search matches the name
// case-insensitively; category and city match exactly.
func (f BusinessFilter) Matches(b *models.Business) bool {
	if f.Category != "" && !strings.EqualFold(b.Category, f.Category) {
		return false
	}
	if f.City != "" && !strings.EqualFold(b.City, f.City) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func (c *Client) ListBusinesses(ctx context.Context, filter BusinessFilter) ([]models.Business, error) {
	var businesses []models.Business
	if err := c.doJSON(ctx, http.MethodGet, "/businesses", nil, &businesses); err != nil {
		return nil, err
	}

	out := businesses[:0]
	for i := range businesses {
		if filter.Matches(&businesses[i]) {
			out = append(out, businesses[i])
		}
	}
	return out, nil
}

func (c *Client) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	var business models.Business
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/businesses/%s", id), nil, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

// MyBusiness returns the business owned by the authenticated owner.
func (c *Client) MyBusiness(ctx context.Context) (*models.Business, error) {
	var business models.Business
	if err := c.doJSON(ctx, http.MethodGet, "/businesses/my", nil, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

type UpdateBusinessRequest struct {
	Name           string                 `json:"name,omitempty"`
	Description    string                 `json:"description,omitempty"`
	Category       string                 `json:"category,omitempty"`
	Address        string                 `json:"address,omitempty"`
	City           string                 `json:"city,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	OperatingHours []models.OperatingHour `json:"operatingHours,omitempty"`
}

func (c *Client) UpdateBusiness(ctx context.Context, id string, req UpdateBusinessRequest) (*models.Business, error) {
	var business models.Business
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/businesses/%s", id), req, &business); err != nil {
		return nil, err
	}
	return &business, nil
}
