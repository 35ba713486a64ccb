package main

import (
	"context"
	"fmt"
	"os"

	"calcterm/internal/calculator"
	"calcterm/internal/config"
	"calcterm/internal/observability"
	"calcterm/internal/output"
	"calcterm/ui/console"
	"calcterm/ui/tui"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error running calculator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := observability.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}
	defer observability.SyncLogger()

	ctx := context.Background()
	shutdown, err := observability.InitMetrics(ctx, cfg.MetricsEnabled)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			observability.Logger.Warn("metrics shutdown failed", zap.Error(err))
		}
	}()
	if err := calculator.InitMetrics(); err != nil {
		return err
	}

	observability.Logger.Info("calculator starting",
		zap.String("mode", cfg.Mode),
		zap.Stringer("theme", cfg.Theme),
		zap.Int("history_limit", cfg.HistoryLimit),
	)

	if cfg.Mode == config.ModeConsole {
		// Read one label per line from stdin and print the final screen
		s := calculator.New()
		s.SetTheme(cfg.Theme)
		if _, err := console.Replay(os.Stdin, &s); err != nil {
			return err
		}
		console.Print(os.Stdout, output.BuildScreen(s, cfg.HistoryLimit))
		return nil
	}

	return tui.Start(cfg)
}
