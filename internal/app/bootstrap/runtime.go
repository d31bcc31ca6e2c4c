package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "github.com/ledgerline/expense-service/internal/adapters/cache"
	httpadapter "github.com/ledgerline/expense-service/internal/adapters/http"
	"github.com/ledgerline/expense-service/internal/adapters/postgres"
	"github.com/ledgerline/expense-service/internal/adapters/security"
	"github.com/ledgerline/expense-service/internal/application"
	"github.com/ledgerline/expense-service/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping expense service",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
	)

	hasher, err := security.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}
	tokenSigner, err := security.NewJWTSigner(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token signer: %w", err)
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := pool.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	repos := postgres.NewRepositories(pool)

	var (
		revocations ports.TokenRevocationStore
		lockouts    ports.LockoutStore
		closeCache  = func() {}
	)
	if cfg.RedisURL != "" {
		redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		revocations = cacheadapter.NewRedisTokenRevocationStore(redisClient)
		lockouts = cacheadapter.NewRedisLockoutStore(redisClient)
		closeCache = func() { _ = redisClient.Close() }
	} else {
		logger.Warn("no REDIS_URL configured; token revocation is process-local and unsuitable for multi-instance deployments")
		revocations = cacheadapter.NewMemoryTokenRevocationStore()
		lockouts = cacheadapter.NewMemoryLockoutStore()
	}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			TokenTTL:             cfg.TokenTTL,
			RecheckAccount:       cfg.RecheckAccount,
			FailedLoginThreshold: cfg.FailedThreshold,
			LockoutDuration:      cfg.LockoutDuration,
		},
		Users:       repos.Users,
		Cashflows:   repos.Cashflows,
		Lockouts:    lockouts,
		Revocations: revocations,
		Hasher:      hasher,
		TokenSigner: tokenSigner,
	})

	cookies := httpadapter.CookieSettings{
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProduction() {
		cookies.SameSite = http.SameSiteNoneMode
	}

	handler := httpadapter.NewHandler(svc, cookies)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func(ctx context.Context) {
			closeCache()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
