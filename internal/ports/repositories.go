package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/domain"
)

// UserRepository defines persistence for user credentials. Uniqueness of the
// username is enforced at the store level; a duplicate insert surfaces as
// domain.ErrConflict, a miss on lookup as domain.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, createdAt time.Time) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// CashflowUpdate carries a partial update; nil fields keep the stored value.
type CashflowUpdate struct {
	Amount      *float64
	Description *string
	OccurredAt  *time.Time
}

// CashflowRepository persists per-user transaction records. Every operation
// is scoped by the owning user id; a record belonging to another user is
// indistinguishable from an absent one.
type CashflowRepository interface {
	Insert(ctx context.Context, flow domain.Cashflow) (domain.Cashflow, error)
	GetByID(ctx context.Context, userID, cashflowID uuid.UUID) (domain.Cashflow, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Cashflow, error)
	SumByUser(ctx context.Context, userID uuid.UUID) (float64, error)
	Update(ctx context.Context, userID, cashflowID uuid.UUID, update CashflowUpdate, updatedAt time.Time) (domain.Cashflow, error)
	Delete(ctx context.Context, userID, cashflowID uuid.UUID) error
}
