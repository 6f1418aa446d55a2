// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized marks a rejected credential: the remote answered an
	// authenticated request with 401. The cached session may be stale.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for lookups of resources the remote does not know.
	ErrNotFound = errors.New("not found")
)
