package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/scorecard/app/shared/httpx"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/scorecard/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// newHTTPRouter builds the root router and the rate limited /api sub-router
// the modules register on.
func newHTTPRouter(cfg config.HTTPConfig, obs *observability.Observability, db *bun.DB) (chi.Router, chi.Router) {
	root := chi.NewRouter()
	root.Use(middleware.RequestID)
	root.Use(middleware.RealIP)
	root.Use(middleware.Recoverer)
	root.Use(httpx.CORSMiddleware(cfg.AllowedOrigins))

	root.Get("/healthz", healthHandler(db))
	if obs.Config.MetricsAddress == "" {
		root.Handle("/metrics", obs.MetricsHandler())
	}

	api := chi.NewRouter()
	api.Use(httpx.RateLimitMiddleware(httpx.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	root.Mount("/api", api)

	return root, api
}

func healthHandler(db *bun.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
