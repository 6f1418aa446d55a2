package session

// Handoff carries the transient values passed between onboarding steps:
// the email between invite and OTP entry, then the subject identifier
// between OTP entry and password setup. It is created on invite success,
// consumed by the next step, and never persisted: a reload or restart
// forces the flow back to login.
type Handoff struct {
	Email     string
	SubjectID string
}

// ReadyForOTP reports whether the hand-off can enter the OTP step.
func (h *Handoff) ReadyForOTP() bool {
	return h != nil && h.Email != ""
}

// ReadyForPasswordSetup reports whether the hand-off can enter the
// password-setup step.
func (h *Handoff) ReadyForPasswordSetup() bool {
	return h != nil && h.SubjectID != ""
}
