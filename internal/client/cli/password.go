package cli

import (
	"context"

	"github.com/gayya20/taskmanager-client/internal/client/guard"
)

// renderSetupPassword is the password-establishment screen. It requires the
// subject identifier handed off by a successful OTP verification; reached
// directly it renders the blocking fallback and attempts no remote call.
func (a *App) renderSetupPassword(ctx context.Context) {
	if !a.handoff.ReadyForPasswordSetup() {
		a.println("Error: User information missing. Please go back to the login page.")
		a.navigate(ctx, guard.RouteLogin)
		return
	}

	a.println("=== Set Password ===")
	a.println("Create a secure password for your account")

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		a.log.Warn(ctx, "password input aborted", "err", err)
		return
	}
	if err := validatePassword(password); err != nil {
		a.println(err.Error())
		return
	}

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		a.log.Warn(ctx, "password input aborted", "err", err)
		return
	}
	if confirm != password {
		a.println("The two passwords do not match!")
		return
	}

	if err := a.session.SetupPassword(ctx, a.handoff.SubjectID, password); err != nil {
		a.println("Setup Error:", err.Error())
		return
	}

	// flow complete: discard the hand-off and require an explicit login
	a.handoff = nil
	a.notice = "Password set successfully. You can now log in with your new password."
	a.navigate(ctx, guard.RouteLogin)
}
