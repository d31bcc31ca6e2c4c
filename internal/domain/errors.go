package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Adapters map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether the username or the password failed.
	// Both lookup-miss and hash-mismatch collapse to this sentinel so login
	// results cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict signals a uniqueness violation, typically a taken username.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput covers malformed request payloads and policy violations.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAccountLocked signals temporary lockout after repeated failed logins.
	ErrAccountLocked = errors.New("account locked")

	// Authorization-gate rejection sentinels. All map to 401 but carry distinct
	// codes so logs and clients can tell the rejection stage apart.
	ErrNoToken      = errors.New("no token provided")
	ErrTokenRevoked = errors.New("token revoked")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUserGone     = errors.New("user not found")
)
