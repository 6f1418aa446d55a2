package cli

import (
	"context"

	"github.com/gayya20/taskmanager-client/internal/client/guard"
	"github.com/gayya20/taskmanager-client/internal/client/session"
)

// renderVerifyOTP is the OTP-entry screen. Without a hand-off email (a
// restart loses it) the screen renders a blocking fallback and attempts
// no remote call.
func (a *App) renderVerifyOTP(ctx context.Context) {
	if !a.handoff.ReadyForOTP() {
		a.println("Error: Email not provided. Please go back to the login page.")
		a.navigate(ctx, guard.RouteLogin)
		return
	}

	a.println("=== Verify OTP ===")
	a.println("Please enter the verification code sent to", a.handoff.Email)

	code, err := getSimpleText(a.reader, "Enter 6-digit OTP", a.out)
	if err != nil {
		a.log.Warn(ctx, "otp input aborted", "err", err)
		return
	}
	if err := validateOTP(code); err != nil {
		a.println(err.Error())
		return
	}

	subjectID, err := a.session.VerifyOTP(ctx, a.handoff.Email, code)
	if err != nil {
		a.println("Verification Error:", err.Error())
		return
	}

	// the email hand-off is consumed; the subject id carries the flow on
	a.handoff = &session.Handoff{SubjectID: subjectID}
	a.navigate(ctx, guard.RouteSetupPassword)
}
