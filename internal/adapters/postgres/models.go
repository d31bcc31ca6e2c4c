package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/domain"
)

type userModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName     string    `gorm:"column:user_name"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "user_data" }

type cashflowModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id"`
	Value       float64   `gorm:"column:value"`
	Description string    `gorm:"column:description"`
	Time        time.Time `gorm:"column:time"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (cashflowModel) TableName() string { return "cashflow_data" }

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		ID:           rec.ID,
		Username:     rec.UserName,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}
}

func toDomainCashflow(rec cashflowModel) domain.Cashflow {
	return domain.Cashflow{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Amount:      rec.Value,
		Description: rec.Description,
		OccurredAt:  rec.Time,
		CreatedAt:   rec.CreatedAt,
	}
}
