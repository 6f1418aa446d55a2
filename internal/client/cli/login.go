package cli

import (
	"context"
	"errors"

	"github.com/gayya20/taskmanager-client/internal/client/guard"
	"github.com/gayya20/taskmanager-client/internal/client/session"
)

// renderLogin shows the login entry point: the one-shot notice left by a
// completed onboarding flow (if any) and the available commands.
func (a *App) renderLogin() {
	a.println("=== Login ===")
	if a.notice != "" {
		a.println("Success:", a.notice)
		a.notice = ""
	}
	if snap := a.session.Snapshot(); snap.Err != nil {
		a.println("Error:", snap.Err.Error())
	}
	a.println("Commands: login, register, help, exit")
}

// Login prompts for credentials and authenticates. Validation failures are
// rendered inline without touching the state machine; a failed remote login
// keeps the user on the login screen with the recorded message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		a.println(err.Error())
		return nil
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	if password == "" {
		a.println("Please input your password!")
		return nil
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.println("Login Error:", err.Error())
		return nil
	}

	a.navigate(ctx, guard.RouteHome)
	return nil
}

// Register runs the admin self-registration chain: request an invite for
// the email, then walk the OTP and password-setup steps carrying the
// hand-off forward. The chain ends back at login; it never authenticates.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email address", a.out)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		a.println(err.Error())
		return nil
	}

	if err := a.session.RequestAdminInvite(ctx, email); err != nil {
		a.println("Registration Error:", err.Error())
		return nil
	}

	a.handoff = &session.Handoff{Email: email}
	a.println("Verification code sent to", email)
	a.navigate(ctx, guard.RouteVerifyOTP)
	return nil
}

// Logout ends the session and returns to the login entry point.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.println("Logout finished with a storage error:", err.Error())
	} else {
		a.println("Logged out successfully")
	}
	a.navigate(ctx, guard.RouteLogin)
	return nil
}
