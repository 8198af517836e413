package server

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish.
const ShutdownTimeout = 10 * time.Second

// Shutdown stops accepting requests, waits for in-flight ones and closes the
// event bus.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	err := s.E.Shutdown(ctx)
	if cerr := s.close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		slog.Error("Server shutdown failed", "error", err)
		return err
	}
	slog.Info("Server stopped")
	return nil
}

func (s *Server) close() error {
	return s.bus.Close()
}
