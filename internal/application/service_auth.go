package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerline/expense-service/internal/domain"
	"github.com/ledgerline/expense-service/internal/ports"
)

func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if err := domain.ValidateUsername(req.Username); err != nil {
		return RegisterResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return RegisterResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Username, passwordHash, s.nowFn())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return RegisterResponse{}, fmt.Errorf("%w: username already taken", domain.ErrConflict)
		}
		return RegisterResponse{}, err
	}

	return RegisterResponse{UserID: user.ID, Username: user.Username}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return LoginResponse{}, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	lockKey := "login:" + req.Username
	lockState, err := s.lockouts.Get(ctx, lockKey)
	if err == nil && lockState.LockedUntil != nil && lockState.LockedUntil.After(s.nowFn()) {
		return LoginResponse{}, domain.ErrAccountLocked
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		// Unknown user and wrong password converge on the same outcome;
		// the failed-attempt counter still advances so the key cannot be
		// probed for existence through lockout timing either.
		_, _ = s.lockouts.RecordFailure(ctx, lockKey, s.nowFn(), s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration)
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		_, _ = s.lockouts.RecordFailure(ctx, lockKey, s.nowFn(), s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration)
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	_ = s.lockouts.Clear(ctx, lockKey)

	now := s.nowFn()
	token, err := s.tokenSigner.Sign(ports.AuthClaims{
		UserID:    user.ID,
		Username:  user.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return LoginResponse{
		User:      UserInfo{ID: user.ID, Username: user.Username},
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// Logout revokes the presented token for the rest of its lifetime. The value
// is not verified first: revoking garbage is harmless and keeps the call
// idempotent for expired or malformed tokens.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	expiresAt := s.nowFn().Add(s.cfg.TokenTTL)
	if claims, err := s.tokenSigner.ParseAndValidate(token); err == nil {
		expiresAt = claims.ExpiresAt
	}
	return s.revocations.Revoke(ctx, token, expiresAt)
}

// ValidateToken is the authorization gate: revocation first (cheap set
// lookup short-circuits cryptographic work), then signature/expiry, then
// the optional account re-check. Any store failure along the way fails
// closed, including caller cancellation.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrNoToken
	}

	revoked, err := s.revocations.IsRevoked(ctx, token)
	if err != nil {
		s.logGateFailure(ctx, "revocation_check", err)
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if revoked {
		return domain.Identity{}, domain.ErrTokenRevoked
	}

	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	if s.cfg.RecheckAccount {
		user, err := s.users.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Identity{}, domain.ErrUserGone
			}
			s.logGateFailure(ctx, "account_recheck", err)
			return domain.Identity{}, domain.ErrInvalidToken
		}
		return domain.Identity{UserID: user.ID, Username: user.Username}, nil
	}

	return domain.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

func (s *Service) logGateFailure(ctx context.Context, step string, err error) {
	slog.Default().WarnContext(ctx, "authorization gate store failure",
		"service", "expense-service",
		"module", "application",
		"layer", "application",
		"operation", "validate_token",
		"outcome", "failure",
		"step", step,
		"error", err.Error(),
	)
}
