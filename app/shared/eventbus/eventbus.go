package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestIDKey is the message metadata key carrying the HTTP request id.
const RequestIDKey = "request_id"

// EventBus publishes and subscribes to in-process topics.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// New returns an in-memory Watermill pub/sub.
func New(logger *slog.Logger) EventBus {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, watermill.NewSlogLogger(logger))
}

// routerCloseTimeout bounds how long Close waits for running handlers.
const routerCloseTimeout = 5 * time.Second

// NewRouter returns a Watermill router with panic recovery.
func NewRouter(logger *slog.Logger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: routerCloseTimeout,
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}
	router.AddMiddleware(middleware.Recoverer)
	return router, nil
}

// NewMessage encodes payload as JSON and copies the request id from ctx.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if id := chimiddleware.GetReqID(ctx); id != "" {
		msg.Metadata.Set(RequestIDKey, id)
	}
	msg.SetContext(ctx)
	return msg, nil
}

// Publish encodes payload and publishes it on topic.
func Publish(ctx context.Context, pub message.Publisher, topic string, payload any) error {
	msg, err := NewMessage(ctx, payload)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (*T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T: %w", v, err)
	}
	return &v, nil
}
