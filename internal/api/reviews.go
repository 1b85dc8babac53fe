package api

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/internal/common/validation"
	"glowbook/internal/models"
)

type ReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment string  `json:"comment,omitempty"`
	StaffID *string `json:"staffId,omitempty"`
}

// CreateReview posts customer feedback. The rating range is checked before
// the request goes out.
func (c *Client) CreateReview(ctx context.Context, businessID string, req ReviewRequest) (*models.Review, error) {
	if err := validation.Rating(req.Rating); err != nil {
		return nil, err
	}

	var review models.Review
	endpoint := fmt.Sprintf("/businesses/%s/reviews", businessID)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) ListReviews(ctx context.Context, businessID string) ([]models.Review, error) {
	var reviews []models.Review
	endpoint := fmt.Sprintf("/businesses/%s/reviews", businessID)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
