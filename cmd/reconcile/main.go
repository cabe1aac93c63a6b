// Command reconcile re-applies confirmed on-chain events whose off-chain
// commit failed. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Usage:
//
//	reconcile [--limit=50]
//
// Exit codes: 0 = success, 1 = error or entries still failing.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/invoice"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/journal"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/postgres/txrecord"
	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban"
	"github.com/heartmarshall/cotravel-backend/internal/app"
	"github.com/heartmarshall/cotravel-backend/internal/config"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
)

func main() {
	limit := flag.Int("limit", 0, "max journal entries to replay (0 = configured batch size)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := settlement.NewService(
		logger,
		invoice.New(pool),
		participant.New(pool),
		txrecord.New(pool),
		journal.New(pool),
		soroban.NewGateway(cfg.Chain, logger),
		postgres.NewTxManager(pool).WithLockTimeout(cfg.Database.LockTimeout),
		cfg.Settlement,
	)

	res, err := svc.ReplayUnapplied(ctx, *limit)
	if err != nil {
		logger.Error("replay failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("replay completed",
		slog.Int("applied", res.Applied),
		slog.Int("resolved", res.Resolved),
		slog.Int("failed", res.Failed),
	)
	if res.Failed > 0 {
		os.Exit(1)
	}
}
