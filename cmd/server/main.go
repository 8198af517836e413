package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/cardshow/internal/app"
	"github.com/nfrund/cardshow/internal/config"
	"github.com/nfrund/cardshow/internal/logging"
	"github.com/nfrund/cardshow/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	// Loads .env first so LOG_FORMAT and LOG_LEVEL can come from it.
	cfg := config.New()
	logging.New()

	injector := app.New(cfg)
	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(cfg.GetAddr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
