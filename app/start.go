package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Start serves HTTP, runs the message router and modules, and blocks until
// shutdown.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 3)
	go func() {
		logger.Info("Starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var metricsSrv *http.Server
	if addr := app.Observability.Config.MetricsAddress; addr != "" {
		metricsSrv = &http.Server{
			Addr:              addr,
			Handler:           app.Observability.MetricsHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("Starting metrics server", slog.String("addr", addr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	go func() {
		if err := app.WatermillRouter.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	var wg sync.WaitGroup
	wg.Add(3)
	go app.Modules.PlayerModule.Run(ctx, &wg)
	go app.Modules.CourseModule.Run(ctx, &wg)
	go app.Modules.RoundModule.Run(ctx, &wg)

	err := app.WaitForShutdown(ctx, errCh, srv, metricsSrv)
	cancel()
	wg.Wait()
	app.Close()

	logger.Info("Application shut down gracefully")
	return err
}
