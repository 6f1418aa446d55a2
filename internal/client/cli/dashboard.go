package cli

import (
	"context"

	"github.com/gayya20/taskmanager-client/internal/client/guard"
)

// renderLanding branches the authenticated landing view on role.
func (a *App) renderLanding(ctx context.Context) {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return
	}

	switch guard.Landing(snap.User.Role) {
	case guard.ViewAdminDashboard:
		a.printf("Welcome back, %s (administrator)\n", snap.User.FullName())
		a.println("Commands: tasks, users, invite, settings, logout")
	default:
		a.printf("Welcome back, %s\n", snap.User.FullName())
		a.println("Commands: tasks, settings, logout")
	}
}

// renderTasks hands over to the external task-management module, passing
// only the caller's role and identifier.
func (a *App) renderTasks(ctx context.Context) {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return
	}
	if err := a.tasks.Render(ctx, snap.User.Role, snap.User.ID); err != nil {
		a.println("Task module failed:", err.Error())
	}
}
