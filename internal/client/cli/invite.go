package cli

import (
	"context"

	"github.com/gayya20/taskmanager-client/internal/client/api"
	"github.com/gayya20/taskmanager-client/internal/client/models"
)

// InviteUser is the admin screen for inviting a regular user, optionally
// prefilled with profile fields. Optional prompts accept an empty line.
func (a *App) InviteUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email to invite", a.out)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		a.println(err.Error())
		return nil
	}

	req := api.InviteUserRequest{Email: email}

	if req.FirstName, err = getSimpleText(a.reader, "First name (optional)", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name (optional)", a.out); err != nil {
		return err
	}

	mobile, err := getSimpleText(a.reader, "Mobile number (optional, e.g. +15551234567)", a.out)
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

	location, err := getSimpleText(a.reader, "Address (optional)", a.out)
	if err != nil {
		return err
	}
	if location != "" {
		lat, latErr := getSimpleText(a.reader, "Latitude", a.out)
		if latErr != nil {
			return latErr
		}
		lng, lngErr := getSimpleText(a.reader, "Longitude", a.out)
		if lngErr != nil {
			return lngErr
		}

		latV, err := parseCoordinate(lat)
		if err != nil {
			a.println(err.Error())
			return nil
		}
		lngV, err := parseCoordinate(lng)
		if err != nil {
			a.println(err.Error())
			return nil
		}
		req.Address = &models.Address{
			Location:    location,
			Coordinates: models.Coordinates{Lat: latV, Lng: lngV},
		}
	}

	if err := a.session.InviteUser(ctx, req); err != nil {
		a.println("Invite Error:", err.Error())
		return nil
	}

	a.println("User invited successfully")
	return nil
}
