package observability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config controls logger format, level and the metrics endpoint.
type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	LogLevel       string
	MetricsAddress string
}

// Observability bundles the logger, tracer provider and metrics registry
// shared by every module.
type Observability struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Config   Config
}

// Init builds the process-wide observability stack.
func Init(_ context.Context, cfg Config) *Observability {
	return InitWithWriter(os.Stdout, cfg)
}

// InitWithWriter is Init with an explicit log destination.
func InitWithWriter(w io.Writer, cfg Config) *Observability {
	logger := NewLogger(w, cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:   logger,
		Registry: reg,
		Config:   cfg,
	}
}

// NewLogger returns a JSON logger outside development and a text logger in it.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Environment, "development") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.ServiceName != "" {
		logger = logger.With(
			slog.String("service", cfg.ServiceName),
			slog.String("env", cfg.Environment),
			slog.String("version", cfg.Version),
		)
	}
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Tracer returns a named tracer from the global provider.
func (o *Observability) Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// MetricsHandler serves the registry in the Prometheus exposition format.
func (o *Observability) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{Registry: o.Registry})
}
