package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/invoice"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/journal"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/txrecord"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban"
	"github.com/heartmarshall/cotravel-backend/internal/auth"
	"github.com/heartmarshall/cotravel-backend/internal/config"
	"github.com/heartmarshall/cotravel-backend/internal/service/access"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
	"github.com/heartmarshall/cotravel-backend/internal/transport/middleware"
	"github.com/heartmarshall/cotravel-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It wires the database, the Soroban
// gateway, the settlement service and the HTTP server, then serves until
// ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("contract_id", cfg.Chain.ContractID),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	gateway := soroban.NewGateway(cfg.Chain, logger)
	if err := gateway.CheckNetwork(ctx); err != nil {
		return fmt.Errorf("check soroban network: %w", err)
	}

	participants := participant.New(pool)
	svc := settlement.NewService(
		logger,
		invoice.New(pool),
		participants,
		txrecord.New(pool),
		journal.New(pool),
		gateway,
		postgres.NewTxManager(pool).WithLockTimeout(cfg.Database.LockTimeout),
		cfg.Settlement,
	)

	// Confirmations journalled before a crash are applied before serving.
	if res, err := svc.ReplayUnapplied(ctx, 0); err != nil {
		logger.Warn("startup replay", slog.String("error", err.Error()))
	} else if res.Applied+res.Resolved+res.Failed > 0 {
		logger.Info("startup replay",
			slog.Int("applied", res.Applied),
			slog.Int("resolved", res.Resolved),
			slog.Int("failed", res.Failed),
		)
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, gateway, BuildVersion()),
		Invoices: rest.NewInvoiceHandler(svc, access.NewPolicy(participants), logger),
		Admin:    rest.NewAdminHandler(svc, logger),
	}, middleware.Chain(
		middleware.Route,
		middleware.RequireAuth,
		middleware.ForMethods(limiter.Limit(cfg.Server.WriteRateLimit), http.MethodPost, http.MethodPut),
	))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	// In-flight requests may be waiting on chain confirmation; give them
	// the full shutdown window to commit.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
