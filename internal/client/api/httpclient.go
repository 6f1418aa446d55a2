package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gayya20/taskmanager-client/internal/client/models"
	"github.com/gayya20/taskmanager-client/internal/common"
	"github.com/gayya20/taskmanager-client/internal/logging"
)

// TokenSource yields the current session credential, or "" when there is
// none. The client consults it on every outgoing request so that a login
// performed mid-process is picked up without rebuilding the client.
type TokenSource func() string

// HTTPClient implements Client over the remote service's JSON/HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:5000/api"). tokens may be nil for a client that never
// authenticates.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// wire types, field names per the remote contract

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type inviteAdminRequest struct {
	Email string `json:"email"`
}

type otpVerificationRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type otpVerificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type passwordSetupRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// The token in the password-setup response is issued by the remote but the
// flow requires an explicit login afterwards, so it is never used here.
type passwordSetupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type usersResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []models.User `json:"data"`
	Message string        `json:"message,omitempty"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Data    *models.User `json:"data"`
	Message string       `json:"message,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// do performs one round trip. Failure classes:
//   - transport (dial error, unreadable or non-JSON body): wrapped ErrUnavailable
//   - application (error status or success=false): *Error with the server message
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug(ctx, "request", "op", op, "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w: %v", op, ErrUnavailable, err)
	}

	var env struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%s: decode response: %w: %v", op, ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || (env.Success != nil && !*env.Success) {
		var cause error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			cause = common.ErrUnauthorized
		case http.StatusNotFound:
			cause = common.ErrNotFound
		}
		return &Error{Op: op, Message: env.Message, cause: cause}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w: %v", op, ErrUnavailable, err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return "", nil, fmt.Errorf("login: incomplete response: %w", ErrUnavailable)
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) InviteAdmin(ctx context.Context, email string) error {
	var resp statusResponse
	return c.do(ctx, "invite-admin", http.MethodPost, "/auth/invite-admin", inviteAdminRequest{Email: email}, &resp)
}

func (c *HTTPClient) InviteUser(ctx context.Context, req InviteUserRequest) error {
	var resp statusResponse
	return c.do(ctx, "invite-user", http.MethodPost, "/auth/invite-user", req, &resp)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	var resp otpVerificationResponse
	err := c.do(ctx, "verify-otp", http.MethodPost, "/auth/verify-otp", otpVerificationRequest{Email: email, OTP: code}, &resp)
	if err != nil {
		return "", err
	}
	if resp.UserID == "" {
		return "", fmt.Errorf("verify-otp: incomplete response: %w", ErrUnavailable)
	}
	return resp.UserID, nil
}

func (c *HTTPClient) SetupPassword(ctx context.Context, subjectID, password string) error {
	var resp passwordSetupResponse
	return c.do(ctx, "setup-password", http.MethodPost, "/auth/setup-password", passwordSetupRequest{UserID: subjectID, Password: password}, &resp)
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var resp usersResponse
	if err := c.do(ctx, "list-users", http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) User(ctx context.Context, id string) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, "get-user", http.MethodGet, "/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, "update-user", http.MethodPut, "/users/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	var resp statusResponse
	return c.do(ctx, "delete-user", http.MethodDelete, "/users/"+id, nil, &resp)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, current, next string) error {
	var resp statusResponse
	return c.do(ctx, "change-password", http.MethodPut, "/users/change-password",
		changePasswordRequest{CurrentPassword: current, NewPassword: next}, &resp)
}
