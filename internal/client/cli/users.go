package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gayya20/taskmanager-client/internal/client/api"
)

// renderUsers is the admin-only user-management view.
func (a *App) renderUsers(ctx context.Context) {
	users, err := a.api.Users(ctx)
	if err != nil {
		a.println("Could not load users:", err.Error())
		return
	}

	a.println("=== Users ===")
	for _, u := range users {
		status := "inactive"
		if u.IsActive {
			status = "active"
		}
		name := u.FullName()
		if name == "" {
			name = "(pending invite)"
		}
		a.printf("%-26s %-24s %-6s %-8s %s\n", u.Email, name, u.Role, status, u.ID)
	}
	a.printf("%d user(s). Commands: invite, edit, remove, home\n", len(users))
}

// EditUser is the admin flow for updating a user's profile or toggling the
// active flag. Empty input keeps the current value of a field; email is
// immutable and never prompted for.
func (a *App) EditUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id to edit", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		a.println("Please input the user id!")
		return nil
	}

	current, err := a.api.User(ctx, id)
	if err != nil {
		a.println("Could not load user:", err.Error())
		return nil
	}
	a.printf("Editing %s (%s)\n", current.Email, current.FullName())

	req := api.UpdateUserRequest{
		FirstName:    current.FirstName,
		LastName:     current.LastName,
		MobileNumber: current.MobileNumber,
		Address:      current.Address,
	}

	if v, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", current.FirstName), a.out); err != nil {
		return err
	} else if v != "" {
		req.FirstName = v
	}
	if v, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", current.LastName), a.out); err != nil {
		return err
	} else if v != "" {
		req.LastName = v
	}

	mobile, err := getSimpleText(a.reader, fmt.Sprintf("Mobile number [%s]", current.MobileNumber), a.out)
	if err != nil {
		return err
	}
	if mobile != "" {
		if err := validateMobile(mobile); err != nil {
			a.println(err.Error())
			return nil
		}
		req.MobileNumber = mobile
	}

	status := "n"
	if current.IsActive {
		status = "y"
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Active? (y/n) [%s]", status), a.out)
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "":
		// keep
	case "y", "yes":
		active := true
		req.IsActive = &active
	case "n", "no":
		active := false
		req.IsActive = &active
	default:
		a.println("Please answer y or n")
		return nil
	}

	if _, err := a.api.UpdateUser(ctx, id, req); err != nil {
		a.println("Update Error:", err.Error())
		return nil
	}

	a.println("User updated successfully")
	return nil
}

// RemoveUser is the admin flow for deleting a user. Deletion is
// irreversible, so it requires typed confirmation.
func (a *App) RemoveUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id to delete", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		a.println("Please input the user id!")
		return nil
	}

	confirm, err := getSimpleText(a.reader, "Type 'yes' to confirm deletion", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		a.println("Deletion cancelled")
		return nil
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		a.println("Delete Error:", err.Error())
		return nil
	}

	a.println("User deleted successfully")
	return nil
}
