package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/openpitch/statsbomb-api/internal/app"
	"github.com/openpitch/statsbomb-api/internal/config"
	"github.com/openpitch/statsbomb-api/internal/observability"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode := "once"
	if len(os.Args) > 1 {
		mode = strings.ToLower(strings.TrimSpace(os.Args[1]))
	}

	exitCode := 0
	switch mode {
	case "once":
		if err := runUpdate(ctx, application.UpdateService, logger); err != nil {
			exitCode = 1
		}
	case "loop":
		runLoop(ctx, application.UpdateService, cfg.UpdateInterval, logger)
	default:
		logger.Error("unknown mode", "mode", mode, "valid", "once, loop")
		exitCode = 2
	}

	if err := application.Close(); err != nil {
		logger.Error("close app", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutdown tracing", "error", err)
	}

	os.Exit(exitCode)
}

func runUpdate(ctx context.Context, svc *usecase.UpdateService, logger *logging.Logger) error {
	result, err := svc.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "update run failed", "error", err)
		return err
	}

	logger.InfoContext(ctx, "update run finished",
		"competitions_scanned", result.CompetitionsScanned,
		"matches_considered", result.MatchesConsidered,
		"matches_processed", result.MatchesProcessed,
		"matches_skipped", result.MatchesSkipped,
		"matches_failed", result.MatchesFailed,
	)

	updated, err := svc.RefreshPlayerTotals(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "refresh player totals failed", "error", err)
		return err
	}
	logger.InfoContext(ctx, "player totals refreshed", "players_updated", updated)

	return nil
}

func runLoop(ctx context.Context, svc *usecase.UpdateService, interval time.Duration, logger *logging.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("updater loop starting", "interval", interval.String())

	// Failed passes are retried on the next tick.
	_ = runUpdate(ctx, svc, logger)
	for {
		select {
		case <-ctx.Done():
			logger.Info("updater loop stopping")
			return
		case <-ticker.C:
			_ = runUpdate(ctx, svc, logger)
		}
	}
}
