package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// WaitForShutdown blocks until a signal, a fatal server error or the end of
// ctx, then shuts the HTTP servers down.
func (app *App) WaitForShutdown(ctx context.Context, errCh <-chan error, servers ...*http.Server) error {
	logger := app.Observability.Logger

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	var runErr error
	logger.Info("Waiting for shutdown signal")
	select {
	case sig := <-interrupt:
		logger.Info("Shutting down", slog.String("signal", sig.String()))
	case runErr = <-errCh:
		logger.Error("Server failed", slog.Any("error", runErr))
	case <-ctx.Done():
		logger.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server forced to shutdown", slog.String("addr", srv.Addr), slog.Any("error", err))
		}
	}

	return runErr
}

// Close stops the modules in reverse start order, then the message router
// and the database.
func (app *App) Close() {
	logger := app.Observability.Logger

	modules := []struct {
		name   string
		closer interface{ Close() error }
	}{
		{"round", app.Modules.RoundModule},
		{"course", app.Modules.CourseModule},
		{"player", app.Modules.PlayerModule},
	}
	for _, m := range modules {
		if err := m.closer.Close(); err != nil {
			logger.Error("Failed to close module", slog.String("module", m.name), slog.Any("error", err))
		}
	}

	if app.WatermillRouter.IsRunning() {
		if err := app.WatermillRouter.Close(); err != nil {
			logger.Error("Failed to close message router", slog.Any("error", err))
		}
	}
	if err := app.EventBus.Close(); err != nil {
		logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			logger.Error("Failed to close database", slog.Any("error", err))
		}
	}
}
