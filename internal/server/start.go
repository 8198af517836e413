package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives.
func (s *Server) Start(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx, addr)
}

// Run starts the background workers and serves HTTP on addr until ctx is
// done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.startWorkers(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = s.close()
			return fmt.Errorf("shutting down the server: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}
	return s.Shutdown()
}

// startWorkers runs the live hub, subscribes the tally to action events and,
// when enabled, watches the catalog directory. All stop when ctx is done.
func (s *Server) startWorkers(ctx context.Context) error {
	go s.hub.Run(ctx)
	if err := s.tally.Start(ctx, s.bus); err != nil {
		return fmt.Errorf("failed to start action tally: %w", err)
	}
	if s.Cfg.GetCatalogHotReload() {
		if err := s.catalog.Watch(ctx, s.Cfg.GetCatalogDir()); err != nil {
			return err
		}
	}
	return nil
}
