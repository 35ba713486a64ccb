package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calcterm/internal/calculator"
	"calcterm/internal/config"
	"calcterm/internal/mcpserver"
	"calcterm/internal/observability"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := observability.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer observability.SyncLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := observability.InitMetrics(ctx, cfg.MetricsEnabled)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize metrics: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())

	if err := calculator.InitMetrics(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register metrics: %v\n", err)
		os.Exit(1)
	}

	server := mcpserver.NewServer(mcpserver.Config{
		ServerName:    cfg.ServerName,
		ServerVersion: cfg.ServerVersion,
		HistoryLimit:  cfg.HistoryLimit,
		Theme:         cfg.Theme,
	})

	if err := server.Start(ctx); err != nil {
		observability.Logger.Error("mcp server stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
