// Package log is the structured logging wrapper every package in this module uses
// instead of calling zap directly, so context-derived fields (request_id, provider,
// model) are attached consistently without threading them through every call site.
package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger, running registered Hooks against the call's context
// before each entry is written.
type Logger struct {
	base  *zap.Logger
	hooks []Hook
}

// New wraps an existing zap.Logger, applying hooks on every call.
func New(base *zap.Logger, hooks ...Hook) *Logger {
	return &Logger{base: base, hooks: hooks}
}

// NewNop returns a Logger that discards everything, the default until a runtime
// builder supplies a real one.
func NewNop() *Logger {
	return &Logger{base: zap.NewNop()}
}

func (l *Logger) fields(ctx context.Context, msg string) []zap.Field {
	var fields []zap.Field

	for _, h := range l.hooks {
		fields = append(fields, h.Apply(ctx, msg)...)
	}

	return fields
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Info(msg, append(l.fields(ctx, msg), fields...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Warn(msg, append(l.fields(ctx, msg), fields...)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Error(msg, append(l.fields(ctx, msg), fields...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Debug(msg, append(l.fields(ctx, msg), fields...)...)
}

// With returns a Logger scoped with additional static fields, e.g. the resolved
// provider and model for one Runtime.Run call.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{base: l.base.With(fields...), hooks: l.hooks}
}
