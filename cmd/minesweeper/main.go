package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/Yuki-42/minesweeper/internal/app"
	"github.com/Yuki-42/minesweeper/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a := app.New(logger, migrations)

	if err := a.Start(ctx); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
