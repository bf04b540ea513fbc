package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OperationRunner carries what a service needs to instrument its operations.
type OperationRunner struct {
	Service string
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics ServiceMetrics

	// IsFailure reports whether err is an expected domain outcome
	// (not found, validation) rather than an infrastructure error.
	IsFailure func(err error) bool
}

// RequestIDAttr returns the chi request id on ctx as a log attribute.
func RequestIDAttr(ctx context.Context) slog.Attr {
	return slog.String("request_id", middleware.GetReqID(ctx))
}

// RunOperation wraps op with a span, attempt/success/failure metrics, duration,
// structured logging and panic recovery.
func RunOperation[T any](
	ctx context.Context,
	r OperationRunner,
	operation string,
	identifier string,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	var span trace.Span
	if r.Tracer != nil {
		ctx, span = r.Tracer.Start(ctx, r.Service+"."+operation, trace.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if r.Metrics != nil {
		r.Metrics.RecordOperationAttempt(ctx, operation, r.Service)
	}

	start := time.Now()
	defer func() {
		if r.Metrics != nil {
			r.Metrics.RecordOperationDuration(ctx, operation, r.Service, time.Since(start))
		}
	}()

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.DebugContext(ctx, "Operation triggered",
		RequestIDAttr(ctx),
		slog.String("operation", operation),
		slog.String("identifier", identifier),
	)

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in %s: %v", operation, rec)
			logger.ErrorContext(ctx, "Critical panic recovered",
				RequestIDAttr(ctx),
				slog.String("operation", operation),
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)
			if r.Metrics != nil {
				r.Metrics.RecordOperationFailure(ctx, operation, r.Service)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)

	if err != nil && r.IsFailure != nil && r.IsFailure(err) {
		logger.WarnContext(ctx, "Operation returned failure result",
			RequestIDAttr(ctx),
			slog.String("operation", operation),
			slog.String("identifier", identifier),
			slog.String("reason", err.Error()),
		)
		if r.Metrics != nil {
			r.Metrics.RecordOperationSuccess(ctx, operation, r.Service)
		}
		return result, err
	}

	if err != nil {
		wrapped := fmt.Errorf("%s: %w", operation, err)
		logger.ErrorContext(ctx, "Operation failed with error",
			RequestIDAttr(ctx),
			slog.String("operation", operation),
			slog.String("identifier", identifier),
			slog.Any("error", wrapped),
		)
		if r.Metrics != nil {
			r.Metrics.RecordOperationFailure(ctx, operation, r.Service)
		}
		span.RecordError(wrapped)
		span.SetStatus(codes.Error, wrapped.Error())
		return result, wrapped
	}

	logger.InfoContext(ctx, "Operation completed successfully",
		RequestIDAttr(ctx),
		slog.String("operation", operation),
		slog.String("identifier", identifier),
	)
	if r.Metrics != nil {
		r.Metrics.RecordOperationSuccess(ctx, operation, r.Service)
	}

	return result, nil
}
