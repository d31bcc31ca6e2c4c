package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the account aggregate owned by the authentication core.
// PasswordHash stays inside the credential store and hashing adapters;
// it is never serialized into API responses.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the request-scoped projection of a verified token.
// It carries only what downstream handlers need to scope their queries.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// Cashflow is a single income or expense record. Amount is positive for
// income and negative for spending; OccurredAt is the user-supplied
// transaction time, not the insert time.
type Cashflow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      float64
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}
