package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the expense service.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID   string
	Environment string

	HTTPPort int

	DatabaseURL string
	// RedisURL is optional. When empty, the revocation registry and login
	// lockout fall back to process-local in-memory stores, which do not
	// survive restarts and are not shared between instances.
	RedisURL string

	JWTSecret string

	BcryptCost int

	TokenTTL        time.Duration
	LockoutDuration time.Duration
	FailedThreshold int

	// RecheckAccount re-resolves the account from storage on every
	// authorized request so tokens cannot outlive deleted accounts.
	RecheckAccount bool

	MaxDBConns int32
}

// IsProduction reports whether the service runs with production transport
// hardening (Secure cookies, SameSite=None).
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID          string `yaml:"id"`
		Environment string `yaml:"environment"`
		HTTPPort    int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:       "expense-service",
		Environment:     "development",
		HTTPPort:        8080,
		BcryptCost:      12,
		TokenTTL:        time.Hour,
		LockoutDuration: 15 * time.Minute,
		FailedThreshold: 5,
		RecheckAccount:  true,
		MaxDBConns:      20,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.Environment != "" {
			cfg.Environment = f.Service.Environment
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
	}

	cfg.Environment = envOrDefault("ENVIRONMENT", cfg.Environment)
	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.FailedThreshold = envInt("FAILED_LOGIN_THRESHOLD", cfg.FailedThreshold)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.RecheckAccount = envBool("AUTH_RECHECK_ACCOUNT", cfg.RecheckAccount)

	cfg.TokenTTL = time.Duration(envInt("TOKEN_EXPIRY_SECONDS", int(cfg.TokenTTL.Seconds()))) * time.Second
	cfg.LockoutDuration = time.Duration(envInt("ACCOUNT_LOCKOUT_MINUTES", int(cfg.LockoutDuration.Minutes()))) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing JWT_SECRET")
	}
	if cfg.BcryptCost <= 0 {
		return Config{}, fmt.Errorf("BCRYPT_ROUNDS must be a positive integer")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_EXPIRY_SECONDS must be positive")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envBool parses common boolean env forms while keeping a deterministic fallback.
func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}
