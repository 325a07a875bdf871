package main

import (
	"context"
	"errors"
	"os"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/cli"
	"fintrack/internal/console"
	"fintrack/internal/finance"
	"fintrack/internal/log"
)

// shutdownGrace bounds how long an interrupted console may take to finish
// its current journal write before the backend is closed.
const shutdownGrace = 2 * time.Second

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}

	result, err := backend.NewFactory(logger.Logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to create backend", log.FieldError, err, log.FieldBackend, backendCfg.Type)
		os.Exit(1)
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", log.FieldError, err)
		}
	}()

	manager := finance.NewManager(
		finance.WithLedger(result.Ledger),
		finance.WithReportDir(cfg.ReportDir),
		finance.WithLogger(logger),
	)
	if err := result.Ledger.Restore(ctx, manager, finance.DefaultAccounts()); err != nil {
		logger.Error("Failed to restore ledger", log.FieldError, err)
		_ = result.Cleanup()
		os.Exit(1)
	}

	logger.Info("Starting finance tracker",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, backendCfg.Type,
		log.FieldPath, cfg.ReportDir)

	err = cli.RunInterruptible(ctx, shutdownGrace, console.New(manager, os.Stdin, os.Stdout, logger).Run)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("Interrupted, shutting down", log.FieldOperation, log.OpShutdown)
	case errors.Is(err, cli.ErrShutdownTimeout):
		logger.Warn("Console did not stop in time, closing backend anyway",
			log.FieldOperation, log.OpShutdown)
	default:
		logger.Error("Console stopped with error", log.FieldError, err)
	}
}
