package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/vancomm/filling-server/internal/config"
	"github.com/vancomm/filling-server/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(tint.NewHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	url, err := config.DbURL()
	if err != nil {
		logger.Error("failed to resolve database url", slog.Any("error", err))
		os.Exit(1)
	}

	migrator, err := database.Migrate(url, migrations)
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		logger.Error("failed to check migration version", slog.Any("error", err))
	} else {
		logger.Info("migration successful", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	os.Exit(0)
}
