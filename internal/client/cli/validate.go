package cli

import (
	"errors"
	"regexp"
	"strconv"
)

// Validation mirrors the remote service's form rules. Failures here are
// rendered inline and never reach the session state machine.

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// E.164
	mobilePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

func validateEmail(email string) error {
	if email == "" {
		return errors.New("Please input your email!")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Please enter a valid email address!")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("Please input your password!")
	}
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters long!")
	}
	return nil
}

func validateOTP(code string) error {
	if code == "" {
		return errors.New("Please input the OTP code!")
	}
	if len(code) != 6 {
		return errors.New("OTP must be 6 digits!")
	}
	return nil
}

func validateMobile(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return errors.New("Please enter a valid mobile number (e.g. +15551234567)")
	}
	return nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("Please enter a numeric coordinate")
	}
	return v, nil
}
