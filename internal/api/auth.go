package api

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type GoogleLoginRequest struct {
	IDToken string      `json:"idToken"`
	Role    models.Role `json:"role,omitempty"`
}

type AcceptInvitationRequest struct {
	Token    string `json:"-"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleLogin exchanges a Google ID token. First-time sign-ins come back with
// RequiresRoleSelection set and no session token; the caller repeats the call
// with a chosen role.
func (c *Client) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*models.GoogleAuthResponse, error) {
	var resp models.GoogleAuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/google", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcceptInvitation turns a pending staff invitation into an account. The
// token travels in the path, matching the invitation email link.
func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	endpoint := fmt.Sprintf("/staff/accept-invitation/%s", req.Token)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePhone persists the contact number before an appointment is created.
func (c *Client) UpdatePhone(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.doJSON(ctx, http.MethodPut, "/auth/update-phone", body, nil)
}
