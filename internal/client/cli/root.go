package cli

import (
	"context"
	"strings"

	"github.com/gayya20/taskmanager-client/internal/client/guard"
)

// redirect chains are short (unknown → home → login at worst); the bound
// only protects against a future route-table mistake
const maxRedirectHops = 3

// navigate resolves route through the guard layer and acts on the decision:
// render the view, follow the redirect, or show the loading placeholder.
func (a *App) navigate(ctx context.Context, route guard.Route) {
	for hop := 0; hop < maxRedirectHops; hop++ {
		d := guard.Resolve(a.session.Snapshot(), route)
		switch d.Outcome {
		case guard.OutcomeLoading:
			a.println("Loading...")
			return
		case guard.OutcomeRedirect:
			route = d.Route
		case guard.OutcomeRender:
			a.route = route
			a.render(ctx, route)
			return
		}
	}
}

func (a *App) render(ctx context.Context, route guard.Route) {
	switch route {
	case guard.RouteLogin:
		a.renderLogin()
	case guard.RouteVerifyOTP:
		a.renderVerifyOTP(ctx)
	case guard.RouteSetupPassword:
		a.renderSetupPassword(ctx)
	case guard.RouteHome:
		a.renderLanding(ctx)
	case guard.RouteTasks:
		a.renderTasks(ctx)
	case guard.RouteUsers:
		a.renderUsers(ctx)
	case guard.RouteSettings:
		a.renderSettings()
	}
}

// Run restores the session from the durable store and drives the command
// loop until EOF, "exit" or context cancellation.
func (a *App) Run(ctx context.Context) {
	a.println("Task Manager (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "err", err)
	}
	a.navigate(ctx, guard.RouteHome)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		a.printf("task %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				a.println("Available commands: home, tasks, users, invite, edit, remove, settings, passwd, go <path>, whoami, logout, exit")
			} else {
				a.println("Available commands: login, register, help, exit")
			}

		case "login":
			if a.isLoggedIn() {
				a.navigate(ctx, guard.RouteHome)
				continue
			}
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			a.navigate(ctx, guard.RouteHome)

		case "tasks":
			a.navigate(ctx, guard.RouteTasks)

		case "users":
			a.navigate(ctx, guard.RouteUsers)

		case "settings":
			a.navigate(ctx, guard.RouteSettings)

		case "invite":
			if d := guard.ProtectAdmin(a.session.Snapshot(), guard.RouteUsers); d.Outcome != guard.OutcomeRender {
				a.navigate(ctx, d.Route)
				continue
			}
			_ = a.InviteUser(ctx)

		case "edit":
			if d := guard.ProtectAdmin(a.session.Snapshot(), guard.RouteUsers); d.Outcome != guard.OutcomeRender {
				a.navigate(ctx, d.Route)
				continue
			}
			_ = a.EditUser(ctx)

		case "remove":
			if d := guard.ProtectAdmin(a.session.Snapshot(), guard.RouteUsers); d.Outcome != guard.OutcomeRender {
				a.navigate(ctx, d.Route)
				continue
			}
			_ = a.RemoveUser(ctx)

		case "passwd":
			if d := guard.Protect(a.session.Snapshot(), guard.RouteSettings); d.Outcome != guard.OutcomeRender {
				a.navigate(ctx, d.Route)
				continue
			}
			_ = a.ChangePassword(ctx)

		case "go":
			if len(args) == 0 {
				a.println("Usage: go <path>")
				continue
			}
			a.navigate(ctx, guard.Route(args[0]))

		case "whoami":
			snap := a.session.Snapshot()
			if snap.User != nil {
				a.printf("%s <%s> role=%s\n", snap.User.FullName(), snap.User.Email, snap.User.Role)
			} else {
				a.println("Not logged in")
			}

		case "exit", "quit":
			a.println("Bye!")
			return

		default:
			a.println("Unknown command:", cmd)
		}
	}
}
