package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerline/expense-service/internal/adapters/cache"
	"github.com/ledgerline/expense-service/internal/adapters/security"
	"github.com/ledgerline/expense-service/internal/domain"
	"github.com/ledgerline/expense-service/internal/ports"
)

// fakeUserRepository mirrors the postgres adapter's contract: unique
// usernames, domain.ErrConflict on duplicates, domain.ErrNotFound on misses.
type fakeUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]domain.User
	failGet error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byID: make(map[uuid.UUID]domain.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, username, passwordHash string, createdAt time.Time) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Username == username {
			return domain.User{}, domain.ErrConflict
		}
	}
	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *fakeUserRepository) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet != nil {
		return domain.User{}, r.failGet
	}
	user, ok := r.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) delete(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, userID)
}

type fakeCashflowRepository struct {
	mu    sync.Mutex
	flows map[uuid.UUID]domain.Cashflow
}

func newFakeCashflowRepository() *fakeCashflowRepository {
	return &fakeCashflowRepository{flows: make(map[uuid.UUID]domain.Cashflow)}
}

func (r *fakeCashflowRepository) Insert(_ context.Context, flow domain.Cashflow) (domain.Cashflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow.ID = uuid.New()
	r.flows[flow.ID] = flow
	return flow, nil
}

func (r *fakeCashflowRepository) GetByID(_ context.Context, userID, cashflowID uuid.UUID) (domain.Cashflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[cashflowID]
	if !ok || flow.UserID != userID {
		return domain.Cashflow{}, domain.ErrNotFound
	}
	return flow, nil
}

func (r *fakeCashflowRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Cashflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Cashflow
	for _, flow := range r.flows {
		if flow.UserID == userID {
			out = append(out, flow)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (r *fakeCashflowRepository) SumByUser(_ context.Context, userID uuid.UUID) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	for _, flow := range r.flows {
		if flow.UserID == userID {
			sum += flow.Amount
		}
	}
	return sum, nil
}

func (r *fakeCashflowRepository) Update(_ context.Context, userID, cashflowID uuid.UUID, update ports.CashflowUpdate, _ time.Time) (domain.Cashflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[cashflowID]
	if !ok || flow.UserID != userID {
		return domain.Cashflow{}, domain.ErrNotFound
	}
	if update.Amount != nil {
		flow.Amount = *update.Amount
	}
	if update.Description != nil {
		flow.Description = *update.Description
	}
	if update.OccurredAt != nil {
		flow.OccurredAt = *update.OccurredAt
	}
	r.flows[cashflowID] = flow
	return flow, nil
}

func (r *fakeCashflowRepository) Delete(_ context.Context, userID, cashflowID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[cashflowID]
	if !ok || flow.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.flows, cashflowID)
	return nil
}

// failingRevocationStore simulates a registry outage so the gate's
// fail-closed path can be exercised.
type failingRevocationStore struct{}

func (failingRevocationStore) Revoke(context.Context, string, time.Time) error { return errStoreDown }
func (failingRevocationStore) IsRevoked(context.Context, string) (bool, error) {
	return false, errStoreDown
}
func (failingRevocationStore) Remove(context.Context, string) error { return errStoreDown }

var errStoreDown = errors.New("store unavailable")

type fixture struct {
	service   *Service
	users     *fakeUserRepository
	cashflows *fakeCashflowRepository
	revoked   *cache.MemoryTokenRevocationStore
	now       time.Time
}

func newFixture(t *testing.T, mutate func(*Config)) *fixture {
	t.Helper()

	cfg := Config{
		TokenTTL:             time.Hour,
		RecheckAccount:       true,
		FailedLoginThreshold: 5,
		LockoutDuration:      15 * time.Minute,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("new hasher: %v", err)
	}
	signer, err := security.NewJWTSigner("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	f := &fixture{
		users:     newFakeUserRepository(),
		cashflows: newFakeCashflowRepository(),
		revoked:   cache.NewMemoryTokenRevocationStore(),
		// Token expiry is checked by the jwt library against the wall
		// clock, so the fixture clock starts at real time rather than a
		// fixed date.
		now: time.Now().UTC().Truncate(time.Second),
	}
	f.service = NewService(Dependencies{
		Config:      cfg,
		Users:       f.users,
		Cashflows:   f.cashflows,
		Lockouts:    cache.NewMemoryLockoutStore(),
		Revocations: f.revoked,
		Hasher:      hasher,
		TokenSigner: signer,
	})
	f.service.nowFn = func() time.Time { return f.now }
	return f
}

func (f *fixture) register(t *testing.T, username, password string) RegisterResponse {
	t.Helper()
	resp, err := f.service.Register(context.Background(), RegisterRequest{Username: username, Password: password})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return resp
}

func (f *fixture) login(t *testing.T, username, password string) LoginResponse {
	t.Helper()
	resp, err := f.service.Login(context.Background(), LoginRequest{Username: username, Password: password})
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	return resp
}
