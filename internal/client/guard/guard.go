// Package guard decides whether a navigable view may render for the current
// session snapshot. Policies are pure functions; they never perform
// navigation themselves, they only return the decision.
package guard

import (
	"github.com/gayya20/taskmanager-client/internal/client/models"
	"github.com/gayya20/taskmanager-client/internal/client/session"
)

// Route identifies a navigable view.
type Route string

const (
	RouteLogin         Route = "/login"
	RouteVerifyOTP     Route = "/verify-otp"
	RouteSetupPassword Route = "/setup-password"
	RouteHome          Route = "/"
	RouteTasks         Route = "/tasks"
	RouteUsers         Route = "/users"
	RouteSettings      Route = "/settings"
)

// Outcome is the kind of decision a guard reaches.
type Outcome int

const (
	// OutcomeLoading means the session is still settling; render a loading
	// placeholder and make no redirect decision yet.
	OutcomeLoading Outcome = iota

	// OutcomeRender permits the requested route.
	OutcomeRender

	// OutcomeRedirect denies the requested route; Route carries the target.
	OutcomeRedirect
)

// Decision is a guard verdict. For OutcomeRender, Route is the requested
// route; for OutcomeRedirect, it is the destination.
type Decision struct {
	Outcome Outcome
	Route   Route
}

// Protect gates a route on authentication. While the session is loading no
// decision is made, to avoid a flash redirect during restore.
func Protect(snap session.Snapshot, route Route) Decision {
	if snap.IsLoading {
		return Decision{Outcome: OutcomeLoading, Route: route}
	}
	if !snap.IsAuthenticated {
		return Decision{Outcome: OutcomeRedirect, Route: RouteLogin}
	}
	return Decision{Outcome: OutcomeRender, Route: route}
}

// ProtectAdmin gates a route on authentication and the admin role. An
// authenticated non-admin is silently sent to the landing view, not shown
// an error.
func ProtectAdmin(snap session.Snapshot, route Route) Decision {
	if snap.IsLoading {
		return Decision{Outcome: OutcomeLoading, Route: route}
	}
	if !snap.IsAuthenticated {
		return Decision{Outcome: OutcomeRedirect, Route: RouteLogin}
	}
	if snap.User == nil || !snap.User.IsAdmin() {
		return Decision{Outcome: OutcomeRedirect, Route: RouteHome}
	}
	return Decision{Outcome: OutcomeRender, Route: route}
}

// View identifies what the landing route renders.
type View string

const (
	ViewAdminDashboard View = "admin-dashboard"
	ViewUserDashboard  View = "user-dashboard"
)

// Landing branches the authenticated landing view on role. This is a pure
// function of the role, not a guard.
func Landing(role models.Role) View {
	if role == models.RoleAdmin {
		return ViewAdminDashboard
	}
	return ViewUserDashboard
}

// Resolve applies the route table: onboarding routes are public, the landing
// and task/settings views need authentication, user management needs admin,
// and anything unknown redirects to the landing route.
func Resolve(snap session.Snapshot, route Route) Decision {
	switch route {
	case RouteLogin, RouteVerifyOTP, RouteSetupPassword:
		return Decision{Outcome: OutcomeRender, Route: route}
	case RouteHome, RouteTasks, RouteSettings:
		return Protect(snap, route)
	case RouteUsers:
		return ProtectAdmin(snap, route)
	default:
		return Decision{Outcome: OutcomeRedirect, Route: RouteHome}
	}
}
