package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"budget/internal/cli"
	"budget/internal/core"
	"budget/internal/ledger"
	applog "budget/internal/log"
	"budget/internal/services"
)

var errShutdownTimeout = errors.New("session did not stop before shutdown timeout")

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger(nil))
	logger := cli.SetupLogger(cfg).With(applog.FieldSessionID, uuid.NewString())

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("Failed to resolve timezone", applog.FieldError, err)
		os.Exit(1)
	}
	clock := core.SystemClock{Location: loc}

	store := ledger.New(clock)
	svc := services.NewBudgetService(store,
		services.WithLogger(logger),
		services.WithSavingsTarget(cfg.SavingsTarget()),
	)

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	defer prompter.Close()

	session := cli.NewSession(svc, prompter, cli.NewRenderer(os.Stdout, cfg.CurrencySymbol), cli.SessionOptions{
		MinReportYear: cfg.MinReportYear,
		Logger:        logger,
	})

	ctx, stop := cli.SignalContext(applog.WithContext(context.Background(), logger))
	defer stop()

	logger.Info("Starting budget tracker", applog.FieldOperation, applog.OpStartup, "timezone", loc.String(), "savings_target_percent", cfg.SavingsTargetPercent)

	sessionDone := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(sessionDone)
		return session.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-sessionDone:
			return nil
		case <-gctx.Done():
		}
		applog.FromContext(gctx).Info("Shutdown signal received", applog.FieldOperation, applog.OpShutdown)
		select {
		case <-sessionDone:
			return nil
		case <-time.After(cfg.ShutdownTimeout):
			return errShutdownTimeout
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		applog.NewStructuredLogger(logger).LogError(ctx, "Budget tracker stopped with error", err, applog.ComponentApp, applog.OpShutdown, nil)
		os.Exit(1)
	}
	logger.Info("Budget tracker stopped")
}
