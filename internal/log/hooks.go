package log

import (
	"context"

	"go.uber.org/zap"
)

// Hook derives extra fields from a call's context, letting a Logger attach
// request-scoped data (a request ID propagated by the caller) without every call site
// having to pass it explicitly.
type Hook interface {
	Apply(ctx context.Context, msg string) []zap.Field
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(ctx context.Context, msg string) []zap.Field

func (f HookFunc) Apply(ctx context.Context, msg string) []zap.Field {
	return f(ctx, msg)
}

type requestIDKey struct{}

// WithRequestID attaches a request ID to ctx for RequestIDHook to pick up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDHook emits a request_id field when one was attached via WithRequestID.
var RequestIDHook Hook = HookFunc(func(ctx context.Context, _ string) []zap.Field {
	if ctx == nil {
		return nil
	}

	id, _ := ctx.Value(requestIDKey{}).(string)
	if id == "" {
		return nil
	}

	return []zap.Field{zap.String("request_id", id)}
})
