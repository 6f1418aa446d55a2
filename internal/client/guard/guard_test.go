package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gayya20/taskmanager-client/internal/client/models"
	"github.com/gayya20/taskmanager-client/internal/client/session"
)

func snapLoading() session.Snapshot {
	return session.Snapshot{State: session.StateRestoring, IsLoading: true}
}

func snapAnonymous() session.Snapshot {
	return session.Snapshot{State: session.StateUnauthenticated}
}

func snapAuthenticated(role models.Role) session.Snapshot {
	return session.Snapshot{
		State:           session.StateAuthenticated,
		User:            &models.User{ID: "u1", Email: "a@x.com", Role: role},
		Token:           "T1",
		IsAuthenticated: true,
	}
}

func TestProtect(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{
			name: "loading never renders nor redirects",
			snap: snapLoading(),
			want: Decision{Outcome: OutcomeLoading, Route: RouteTasks},
		},
		{
			name: "anonymous redirects to login",
			snap: snapAnonymous(),
			want: Decision{Outcome: OutcomeRedirect, Route: RouteLogin},
		},
		{
			name: "authenticated renders",
			snap: snapAuthenticated(models.RoleUser),
			want: Decision{Outcome: OutcomeRender, Route: RouteTasks},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Protect(tt.snap, RouteTasks))
		})
	}
}

func TestProtectAdmin(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{
			name: "loading holds the decision",
			snap: snapLoading(),
			want: Decision{Outcome: OutcomeLoading, Route: RouteUsers},
		},
		{
			name: "anonymous redirects to login",
			snap: snapAnonymous(),
			want: Decision{Outcome: OutcomeRedirect, Route: RouteLogin},
		},
		{
			name: "authenticated non-admin silently lands home",
			snap: snapAuthenticated(models.RoleUser),
			want: Decision{Outcome: OutcomeRedirect, Route: RouteHome},
		},
		{
			name: "admin renders",
			snap: snapAuthenticated(models.RoleAdmin),
			want: Decision{Outcome: OutcomeRender, Route: RouteUsers},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProtectAdmin(tt.snap, RouteUsers))
		})
	}
}

func TestLanding(t *testing.T) {
	assert.Equal(t, ViewAdminDashboard, Landing(models.RoleAdmin))
	assert.Equal(t, ViewUserDashboard, Landing(models.RoleUser))
	assert.Equal(t, ViewUserDashboard, Landing(models.Role("")), "non-admin roles land on the user dashboard")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		snap  session.Snapshot
		route Route
		want  Decision
	}{
		{
			name:  "login is public",
			snap:  snapAnonymous(),
			route: RouteLogin,
			want:  Decision{Outcome: OutcomeRender, Route: RouteLogin},
		},
		{
			name:  "otp entry is public",
			snap:  snapAnonymous(),
			route: RouteVerifyOTP,
			want:  Decision{Outcome: OutcomeRender, Route: RouteVerifyOTP},
		},
		{
			name:  "home needs auth",
			snap:  snapAnonymous(),
			route: RouteHome,
			want:  Decision{Outcome: OutcomeRedirect, Route: RouteLogin},
		},
		{
			name:  "users needs admin",
			snap:  snapAuthenticated(models.RoleUser),
			route: RouteUsers,
			want:  Decision{Outcome: OutcomeRedirect, Route: RouteHome},
		},
		{
			name:  "settings renders for any authenticated user",
			snap:  snapAuthenticated(models.RoleUser),
			route: RouteSettings,
			want:  Decision{Outcome: OutcomeRender, Route: RouteSettings},
		},
		{
			name:  "unknown path redirects home",
			snap:  snapAuthenticated(models.RoleAdmin),
			route: Route("/nope"),
			want:  Decision{Outcome: OutcomeRedirect, Route: RouteHome},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.snap, tt.route))
		})
	}
}
