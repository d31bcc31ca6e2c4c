package application

import (
	"time"

	"github.com/google/uuid"
)

type Config struct {
	// TokenTTL is the bearer-token lifetime encoded in the exp claim.
	TokenTTL time.Duration
	// RecheckAccount makes the authorization gate re-resolve the account
	// from storage on every request, so tokens cannot outlive deleted
	// accounts. Off, the gate trusts the verified claims alone.
	RecheckAccount       bool
	FailedLoginThreshold int
	LockoutDuration      time.Duration
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginResponse struct {
	User      UserInfo `json:"user"`
	Token     string   `json:"token"`
	ExpiresIn int64    `json:"expires_in"`
}

type CashflowAddRequest struct {
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type CashflowUpdateRequest struct {
	CashflowID  uuid.UUID  `json:"cashflowId"`
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type CashflowItem struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

type CashflowListResponse struct {
	Rows []CashflowItem `json:"rows"`
	Sum  float64        `json:"sum"`
}
