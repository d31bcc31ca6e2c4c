package ports

import (
	"context"
	"time"
)

// TokenRevocationStore keeps tokens invalidated before their natural expiry.
// Membership is keyed by the exact presented token value, so even a garbage
// string can be revoked safely. Implementations must tolerate concurrent
// Revoke/IsRevoked from many in-flight requests.
//
// The in-memory implementation is process-local: in a multi-instance
// deployment each instance holds an independent registry unless the
// Redis-backed store is configured.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// Remove deletes a revocation entry. Not part of the normal request
	// path; exists for operational cleanup.
	Remove(ctx context.Context, token string) error
}

// LockoutState is the current brute-force counter for a login key.
type LockoutState struct {
	FailedCount int
	LockedUntil *time.Time
}

// LockoutStore handles short-lived failed-login protection state.
type LockoutStore interface {
	Get(ctx context.Context, key string) (LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (LockoutState, error)
	Clear(ctx context.Context, key string) error
}
