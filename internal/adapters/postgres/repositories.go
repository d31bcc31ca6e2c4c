package postgres

import (
	"github.com/ledgerline/expense-service/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Users     ports.UserRepository
	Cashflows ports.CashflowRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     &userRepository{db: db},
		Cashflows: &cashflowRepository{db: db},
	}
}
