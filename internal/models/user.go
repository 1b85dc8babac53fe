package models

import "time"

// Role represents the account type assigned by the backend.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// User represents an authenticated account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResponse is returned by login, register and invitation acceptance.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// GoogleAuthResponse adds the role-selection flag for first-time Google
// sign-ins.
type GoogleAuthResponse struct {
	Token                 string `json:"token,omitempty"`
	User                  *User  `json:"user,omitempty"`
	RequiresRoleSelection bool   `json:"requiresRoleSelection"`
}
