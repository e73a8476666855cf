package errs

import "errors"

// Sentinel errors shared across the engine layers
var (
	// Drop errors
	ErrNoActiveDrop      = errors.New("no active drop")
	ErrHandleMismatch    = errors.New("claim targets a drop that is not open")
	ErrClaimBackpressure = errors.New("claim buffer is full")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminDisabled      = errors.New("admin login is not configured")
)
