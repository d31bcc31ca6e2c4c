package security

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/ports"
)

// minSecretBytes is the floor for the HMAC signing secret. Anything shorter
// than the HS256 block size invites brute forcing of issued tokens.
const minSecretBytes = 32

// JWTSigner implements HS256 token signing/parsing for auth sessions.
// The secret is held at adapter level so the application layer stays
// crypto-library agnostic.
type JWTSigner struct {
	secret []byte
}

// NewJWTSigner builds a signer from the configured shared secret.
// An absent or short secret fails construction; tokens are never issued
// unsigned or weakly signed.
func NewJWTSigner(secret string) (*JWTSigner, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is required")
	}
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("jwt signing secret must be at least %d bytes", minSecretBytes)
	}
	return &JWTSigner{secret: []byte(secret)}, nil
}

type authJWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Sign(claims ports.AuthClaims) (string, error) {
	if claims.Username == "" || claims.UserID == uuid.Nil {
		return "", errors.New("claims require username and user id")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authJWTClaims{
		UserID:   claims.UserID.String(),
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	return token.SignedString(s.secret)
}

// ParseAndValidate verifies signature and expiry. The signing algorithm is
// pinned to HS256; an alg header naming anything else is rejected before
// key lookup, closing the usual alg-confusion hole.
func (s *JWTSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &authJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ports.AuthClaims{}, err
	}
	claims, ok := parsed.Claims.(*authJWTClaims)
	if !ok || !parsed.Valid {
		return ports.AuthClaims{}, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("parse user_id: %w", err)
	}
	if claims.Username == "" {
		return ports.AuthClaims{}, errors.New("token missing username claim")
	}

	out := ports.AuthClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return out, nil
}
