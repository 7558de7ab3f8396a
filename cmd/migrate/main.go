// Command migrate applies pending schema migrations for the configured
// storage driver (postgres or sqlite).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/genealogy-backend/internal/app"
	"github.com/heartmarshall/genealogy-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, logger, cfg.Database)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		logger.Error("migrate", slog.String("driver", storage.Driver), slog.String("error", err.Error()))
		storage.Close()
		os.Exit(1)
	}

	logger.Info("migrations up to date", slog.String("driver", storage.Driver))
}
