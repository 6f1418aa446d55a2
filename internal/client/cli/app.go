// Package cli renders the navigable surface of the task-manager client: the
// onboarding screens (login, OTP entry, password setup), the role-branched
// dashboards, and the admin views. Screens call the session state machine
// and never navigate on their own; every route change goes through the
// guard layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gayya20/taskmanager-client/internal/client/api"
	"github.com/gayya20/taskmanager-client/internal/client/config"
	"github.com/gayya20/taskmanager-client/internal/client/guard"
	"github.com/gayya20/taskmanager-client/internal/client/models"
	"github.com/gayya20/taskmanager-client/internal/client/session"
	"github.com/gayya20/taskmanager-client/internal/logging"
)

// sessionController is the slice of the session manager the views need.
// The concrete *session.Manager satisfies it; tests provide a fake.
type sessionController interface {
	Snapshot() session.Snapshot
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	RequestAdminInvite(ctx context.Context, email string) error
	InviteUser(ctx context.Context, req api.InviteUserRequest) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	SetupPassword(ctx context.Context, subjectID, password string) error
}

// TaskComponent is the externally supplied task-management module. The
// client only hands it the caller's role and identifier; everything else
// about it is opaque.
type TaskComponent interface {
	Render(ctx context.Context, role models.Role, userID string) error
}

// PlaceholderTasks stands in when no task module is wired. Output goes to
// the same writer as the rest of the views.
type PlaceholderTasks struct {
	Out io.Writer
}

func (p PlaceholderTasks) Render(_ context.Context, role models.Role, userID string) error {
	fmt.Fprintf(p.Out, "Task board (user %s, role %s): module not installed\n", userID, role)
	return nil
}

type App struct {
	config  *config.Config
	session sessionController
	api     api.Client
	tasks   TaskComponent
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	route   guard.Route
	handoff *session.Handoff
	notice  string // one-shot banner shown by the next login screen
}

func NewApp(cfg *config.Config, sess sessionController, client api.Client, tasks TaskComponent, log logging.Logger) *App {
	a := &App{
		config:  cfg,
		session: sess,
		api:     client,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		route:   guard.RouteHome,
	}
	if tasks == nil {
		tasks = PlaceholderTasks{Out: a.out}
	}
	a.tasks = tasks
	return a
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.IsLoading {
		return "(...)"
	}
	if snap.User != nil {
		return fmt.Sprintf("(%s %s)", snap.User.Email, snap.User.Role)
	}
	return ""
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
