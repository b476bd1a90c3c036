// Package common defines shared sentinel errors used across the service
// layers of cardlink. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors for admin-supplied records.
	ErrorInvalidRecord = errors.New("invalid record")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
