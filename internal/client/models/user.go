// Package models defines the identity record cached by the client alongside
// the session credential. Field names follow the remote service's JSON
// contract.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the authorization role carried by an identity record.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the roles the remote service issues.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Coordinates is a geographic point attached to a postal address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a postal address with its picked map location.
type Address struct {
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
}

// User is the read-only cached copy of the server-side identity record.
// It is only ever replaced wholesale after a successful remote operation.
type User struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber,omitempty"`
	Address      *Address `json:"address,omitempty"`
	Role         Role     `json:"role"`
	IsActive     bool     `json:"isActive"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var errInvalidRecord = errors.New("invalid identity record")

// Validate checks the structural invariants a restored record must satisfy.
// A record failing this check is treated as store corruption.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: missing id", errInvalidRecord)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: missing email", errInvalidRecord)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", errInvalidRecord, u.Role)
	}
	return nil
}
