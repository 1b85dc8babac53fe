// Package session holds the token and resolves who is signed in.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"glowbook/internal/api"
	"glowbook/internal/common/errors"
	"glowbook/internal/common/logger"
	"glowbook/internal/common/validation"
	"glowbook/internal/models"
)

// Manager loads, refreshes and tears down the session. It doubles as the
// api.TokenSource, so construct it first, build the api client around it,
// then Bind the client back.
type Manager struct {
	store Store
	log   logger.Logger

	mu     sync.RWMutex
	token  string
	client *api.Client
}

func NewManager(store Store, log logger.Logger) *Manager {
	m := &Manager{store: store, log: log}
	if token, err := store.Load(); err == nil {
		m.token = token
	}
	return m
}

// Bind attaches the api client after construction.
func (m *Manager) Bind(client *api.Client) {
	m.client = client
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) setToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	if token == "" {
		return m.store.Clear()
	}
	return m.store.Save(token)
}

// Resolve returns the signed-in user. An expired token is cleared locally
// without a round trip.
func (m *Manager) Resolve(ctx context.Context) (*models.User, error) {
	token := m.Token()
	if token == "" {
		return nil, errors.NewConflictError(errors.ErrCodeUnauthenticated, "not signed in")
	}
	if expired(token) {
		m.log.Info("stored token expired, clearing session", nil)
		_ = m.setToken("")
		return nil, errors.NewConflictError(errors.ErrCodeUnauthenticated, "session expired, please sign in again")
	}

	user, err := m.client.Me(ctx)
	if err != nil {
		if stdErr, ok := err.(*errors.StandardError); ok && stdErr.Code == errors.ErrCodeUnauthenticated {
			_ = m.setToken("")
		}
		return nil, err
	}
	return user, nil
}

// expired inspects the exp claim without verifying the signature. The backend
// stays the authority; this only avoids a doomed request.
func expired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := m.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := m.setToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	if err := validation.Password(req.Password); err != nil {
		return nil, err
	}
	resp, err := m.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.setToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GoogleLogin signs in with a Google ID token. When the backend asks for a
// role the caller must repeat the call with one; no session is stored until
// then.
func (m *Manager) GoogleLogin(ctx context.Context, idToken string, role models.Role) (*models.GoogleAuthResponse, error) {
	resp, err := m.client.GoogleLogin(ctx, api.GoogleLoginRequest{IDToken: idToken, Role: role})
	if err != nil {
		return nil, err
	}
	if resp.RequiresRoleSelection {
		return resp, nil
	}
	if err := m.setToken(resp.Token); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *Manager) AcceptInvitation(ctx context.Context, req api.AcceptInvitationRequest) (*models.User, error) {
	if err := validation.Password(req.Password); err != nil {
		return nil, err
	}
	resp, err := m.client.AcceptInvitation(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.setToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout drops the stored token. Local state only; the backend keeps no
// session.
func (m *Manager) Logout() error {
	return m.setToken("")
}

// DashboardPath maps a role to its landing area.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleOwner:
		return "/business"
	case models.RoleStaff:
		return "/staff"
	case models.RoleAdmin:
		return "/admin"
	default:
		return "/customer"
	}
}
