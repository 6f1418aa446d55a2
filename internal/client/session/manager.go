// Package session holds the client-side session state machine and its
// durable store. The manager owns the only mutable session state in the
// process; it is constructed once in main and passed to every consumer.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/gayya20/taskmanager-client/internal/client/api"
	"github.com/gayya20/taskmanager-client/internal/client/models"
	"github.com/gayya20/taskmanager-client/internal/logging"
)

// State is the authentication state of the session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateRestoring       State = "restoring"
	StateAuthenticated   State = "authenticated"
)

// Snapshot is the derived, immutable view of the session, recomputed on
// every read. IsAuthenticated holds exactly when both the identity record
// and the credential are present.
type Snapshot struct {
	State           State
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Err             error
}

// Fixed fallback messages used when a failed operation carries no server
// message and the transport error text is unfit for users.
const (
	fallbackLogin      = "Login failed. Please try again."
	fallbackInvite     = "Registration failed. Please try again later."
	fallbackOTP        = "OTP verification failed. Please try again."
	fallbackSetup      = "Password setup failed. Please try again."
	fallbackInviteUser = "Failed to invite user. Please try again."
)

// Error is a failed operation reduced to a user-facing message. The
// underlying cause stays reachable through errors.Is / errors.As.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Manager is the session state machine. All operations are serialized; the
// store is always written before the in-memory state transitions, so an
// observer of the snapshot sees a store already consistent with it.
type Manager struct {
	store *Store
	api   api.Client
	log   logging.Logger

	opMu sync.Mutex // one operation at a time

	mu      sync.Mutex // guards the fields below
	state   State
	user    *models.User
	token   string
	loading bool
	lastErr error
}

func NewManager(store *Store, client api.Client, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		api:   client,
		log:   log.With("component", "session"),
		state: StateUnauthenticated,
	}
}

// Snapshot derives the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State:           m.state,
		User:            m.user,
		Token:           m.token,
		IsAuthenticated: m.user != nil && m.token != "",
		IsLoading:       m.loading,
		Err:             m.lastErr,
	}
}

// Token returns the current credential, or "". Satisfies api.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Restore reconstructs the session from the durable store. It never
// contacts the remote service: a previously validated pair is trusted as-is,
// and a stale credential only surfaces as a 401 on the first authenticated
// call. Any missing or corrupt entry purges the store and lands the session
// in StateUnauthenticated without a user-visible error.
func (m *Manager) Restore(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	m.state = StateRestoring
	m.loading = true
	m.mu.Unlock()

	token, tokenErr := m.store.ReadToken(ctx)
	user, userErr := m.store.ReadUser(ctx)

	if tokenErr != nil || userErr != nil || token == "" || user == nil {
		if tokenErr != nil || userErr != nil {
			m.log.Warn(ctx, "purging corrupt session store",
				"token_err", tokenErr, "user_err", userErr)
		}
		if err := m.store.Purge(ctx); err != nil {
			m.log.Error(ctx, "session store purge failed", "err", err)
		}
		m.mu.Lock()
		m.state = StateUnauthenticated
		m.user = nil
		m.token = ""
		m.loading = false
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.token = token
	m.loading = false
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", user.Email, "role", user.Role)
	return nil
}

// Login authenticates against the remote service. On success the credential
// and identity record are persisted and the session transitions to
// StateAuthenticated. On failure nothing is persisted and the reduced error
// is both recorded in the snapshot and returned to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.begin()

	token, user, err := m.api.Login(ctx, email, password)
	if err != nil {
		return m.fail(ctx, "login", fallbackLogin, err)
	}

	if err := m.store.WriteToken(ctx, token); err != nil {
		return m.fail(ctx, "login", fallbackLogin, err)
	}
	if err := m.store.WriteUser(ctx, user); err != nil {
		return m.fail(ctx, "login", fallbackLogin, err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.token = token
	m.loading = false
	m.lastErr = nil
	m.mu.Unlock()

	m.log.Info(ctx, "login succeeded", "user", user.Email, "role", user.Role)
	return nil
}

// Logout purges the store and resets the session. No remote call is made;
// the server holds no session state to invalidate.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	err := m.store.Purge(ctx)

	m.mu.Lock()
	m.state = StateUnauthenticated
	m.user = nil
	m.token = ""
	m.lastErr = nil
	m.mu.Unlock()

	if err != nil {
		m.log.Error(ctx, "logout purge failed", "err", err)
		return err
	}
	m.log.Info(ctx, "logged out successfully")
	return nil
}

// RequestAdminInvite starts admin self-registration. The authentication
// state does not change; on success the caller advances to OTP entry
// carrying the email forward.
func (m *Manager) RequestAdminInvite(ctx context.Context, email string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.begin()

	if err := m.api.InviteAdmin(ctx, email); err != nil {
		return m.fail(ctx, "invite-admin", fallbackInvite, err)
	}

	m.finish()
	m.log.Info(ctx, "admin invite requested", "email", email)
	return nil
}

// InviteUser invites a regular user on behalf of an admin. Neither the
// authentication state nor the store changes.
func (m *Manager) InviteUser(ctx context.Context, req api.InviteUserRequest) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.begin()

	if err := m.api.InviteUser(ctx, req); err != nil {
		return m.fail(ctx, "invite-user", fallbackInviteUser, err)
	}

	m.finish()
	m.log.Info(ctx, "user invited", "email", req.Email)
	return nil
}

// VerifyOTP checks the one-time code and returns the subject identifier for
// the password-setup step. It does not authenticate the session and does
// not touch the store.
func (m *Manager) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.begin()

	subjectID, err := m.api.VerifyOTP(ctx, email, code)
	if err != nil {
		return "", m.fail(ctx, "verify-otp", fallbackOTP, err)
	}

	m.finish()
	return subjectID, nil
}

// SetupPassword establishes the password for the verified subject. Success
// does not authenticate: the flow requires a subsequent explicit login.
func (m *Manager) SetupPassword(ctx context.Context, subjectID, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.begin()

	if err := m.api.SetupPassword(ctx, subjectID, password); err != nil {
		return m.fail(ctx, "setup-password", fallbackSetup, err)
	}

	m.finish()
	return nil
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.loading = true
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *Manager) finish() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// fail reduces err to a user-facing message: the server-supplied message if
// the remote rejected the operation with one, the fixed fallback otherwise.
// The reduced error is recorded as the snapshot's Err and returned.
func (m *Manager) fail(ctx context.Context, op, fallback string, err error) error {
	message := fallback
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	reduced := &Error{Message: message, cause: err}

	m.mu.Lock()
	m.loading = false
	m.lastErr = reduced
	m.mu.Unlock()

	m.log.Warn(ctx, "operation failed", "op", op, "err", err)
	return reduced
}
