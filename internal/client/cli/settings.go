package cli

import "context"

func (a *App) renderSettings() {
	a.println("=== Settings ===")
	a.println("Commands: passwd, home")
}

// ChangePassword rotates the current user's password. The same validation
// as password setup applies; the session and its stored credential are
// unaffected by a successful change.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	if current == "" {
		a.println("Please input your password!")
		return nil
	}

	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	if err := validatePassword(next); err != nil {
		a.println(err.Error())
		return nil
	}

	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if confirm != next {
		a.println("The two passwords do not match!")
		return nil
	}

	if err := a.api.ChangePassword(ctx, current, next); err != nil {
		a.println("Change Password Error:", err.Error())
		return nil
	}

	a.println("Password changed successfully")
	return nil
}
