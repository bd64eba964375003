package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"matchbook/internal/app"
	"matchbook/internal/cli"
	"matchbook/internal/engine"
	"matchbook/internal/service"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap failed:", err)
		os.Exit(1)
	}

	// 2. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Build the engine and its single write entry point
	book := engine.New()
	svc := service.NewMatchingService(book, bootstrap.Journal, bootstrap.Metrics)

	// 4. Run the interactive session over stdin/stdout
	session := cli.NewSession(svc, bootstrap.Config.Book.PriceScale, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("session ended with error", slog.Any("error", err))
		os.Exit(1)
	}
}
