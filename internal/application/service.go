package application

import (
	"time"

	"github.com/ledgerline/expense-service/internal/ports"
)

type Service struct {
	cfg         Config
	users       ports.UserRepository
	cashflows   ports.CashflowRepository
	lockouts    ports.LockoutStore
	revocations ports.TokenRevocationStore
	hasher      ports.PasswordHasher
	tokenSigner ports.TokenSigner
	nowFn       func() time.Time
}

type Dependencies struct {
	Config      Config
	Users       ports.UserRepository
	Cashflows   ports.CashflowRepository
	Lockouts    ports.LockoutStore
	Revocations ports.TokenRevocationStore
	Hasher      ports.PasswordHasher
	TokenSigner ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:         deps.Config,
		users:       deps.Users,
		cashflows:   deps.Cashflows,
		lockouts:    deps.Lockouts,
		revocations: deps.Revocations,
		hasher:      deps.Hasher,
		tokenSigner: deps.TokenSigner,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}
