// Package common defines the sentinel errors shared across services,
// repositories and the HTTP layer. Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Request-shape errors, rejected before any business logic runs.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication errors. ErrInvalidCredentials deliberately covers both
	// "no such email" and "wrong password" so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")

	// ErrCorruptCredential marks a stored password hash that bcrypt cannot
	// parse. Internal only: it is logged and surfaced to clients as
	// ErrInvalidCredentials.
	ErrCorruptCredential = errors.New("corrupt stored credential")

	// Infrastructure failures (storage down, etc). Retrying is the caller's
	// decision, never ours.
	ErrInternal = errors.New("internal error")
)
