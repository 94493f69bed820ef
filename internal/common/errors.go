// Package common defines shared constants and sentinel errors used across
// the client and server layers of Inkpress. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")

	// Client-side sync errors.
	ErrValidation = errors.New("validation failed")
	ErrFileUpload = errors.New("file upload failed")
	ErrSlugTaken  = errors.New("slug already taken")

	// Transport-level errors.
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("server unavailable")
)
