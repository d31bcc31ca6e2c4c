package domain

import (
	"fmt"
	"strings"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	// bcrypt rejects input beyond 72 bytes, so the bound is enforced here
	// instead of surfacing as a hashing fault.
	maxPasswordLength = 72
)

// ValidateUsername enforces the account-name contract. Usernames are
// case-sensitive, so no canonicalization happens here beyond trimming.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if trimmed != username {
		return fmt.Errorf("%w: username must not have surrounding whitespace", ErrInvalidInput)
	}
	if len(username) < minUsernameLength {
		return fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be <= %d characters", ErrInvalidInput, maxUsernameLength)
	}
	for _, r := range username {
		if r < 0x21 || r > 0x7e {
			return fmt.Errorf("%w: username must be printable ASCII without spaces", ErrInvalidInput)
		}
	}
	return nil
}

// ValidatePassword enforces baseline password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
