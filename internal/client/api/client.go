// Package api is the typed contract with the remote identity service: the
// five identity-bootstrap operations plus authenticated access to the user
// management endpoints. Transport failures and application-level rejections
// are surfaced as distinct error kinds so callers can reduce them to user
// messages deterministically.
package api

import (
	"context"

	"github.com/gayya20/taskmanager-client/internal/client/models"
)

// InviteUserRequest carries the optional profile fields an admin may prefill
// when inviting a user.
type InviteUserRequest struct {
	Email        string          `json:"email"`
	FirstName    string          `json:"firstName,omitempty"`
	LastName     string          `json:"lastName,omitempty"`
	MobileNumber string          `json:"mobileNumber,omitempty"`
	Address      *models.Address `json:"address,omitempty"`
}

// UpdateUserRequest carries the mutable subset of an identity record.
// Email is immutable after creation and deliberately absent.
type UpdateUserRequest struct {
	FirstName    string          `json:"firstName,omitempty"`
	LastName     string          `json:"lastName,omitempty"`
	MobileNumber string          `json:"mobileNumber,omitempty"`
	Address      *models.Address `json:"address,omitempty"`
	IsActive     *bool           `json:"isActive,omitempty"`
}

// Client is the remote identity service contract.
//
// Identity-bootstrap operations (Login through SetupPassword) work without
// an established session; the remaining operations attach the stored
// credential and fail with common.ErrUnauthorized when the remote rejects it.
type Client interface {
	// Login exchanges credentials for a session token and identity record.
	Login(ctx context.Context, email, password string) (string, *models.User, error)

	// InviteAdmin starts admin self-registration for the given email.
	InviteAdmin(ctx context.Context, email string) error

	// InviteUser invites a regular user, optionally prefilled with profile data.
	InviteUser(ctx context.Context, req InviteUserRequest) error

	// VerifyOTP checks the one-time code sent to email and returns the
	// subject identifier for the password-setup step.
	VerifyOTP(ctx context.Context, email, code string) (string, error)

	// SetupPassword establishes the password for the subject returned by
	// VerifyOTP. It does not authenticate the session.
	SetupPassword(ctx context.Context, subjectID, password string) error

	// Users lists all identity records (admin endpoint).
	Users(ctx context.Context) ([]models.User, error)

	// User fetches a single identity record by id.
	User(ctx context.Context, id string) (*models.User, error)

	// UpdateUser replaces the mutable fields of a record and returns the
	// updated copy.
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error)

	// DeleteUser removes an identity record.
	DeleteUser(ctx context.Context, id string) error

	// ChangePassword rotates the current user's password.
	ChangePassword(ctx context.Context, current, next string) error
}
