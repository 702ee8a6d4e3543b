package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(hooks ...Hook) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return New(zap.New(core), hooks...), logs
}

func TestLogger_InfoEmitsEntryWithSuppliedFields(t *testing.T) {
	l, logs := newObservedLogger()

	l.Info(context.Background(), "dispatching request", zap.String("provider", "openai"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	require.Equal(t, "dispatching request", entry.Message)
	require.Equal(t, "openai", entry.ContextMap()["provider"])
}

func TestLogger_RequestIDHookAttachesFieldWhenPresent(t *testing.T) {
	l, logs := newObservedLogger(RequestIDHook)

	ctx := WithRequestID(context.Background(), "req-123")
	l.Warn(ctx, "retrying request")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
}

func TestLogger_RequestIDHookOmitsFieldWhenAbsent(t *testing.T) {
	l, logs := newObservedLogger(RequestIDHook)

	l.Error(context.Background(), "failed")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["request_id"]
	require.False(t, ok)
}

func TestLogger_WithAddsStaticFieldsToEverySubsequentEntry(t *testing.T) {
	l, logs := newObservedLogger()

	scoped := l.With(zap.String("model", "gpt-5"))
	scoped.Debug(context.Background(), "first")
	scoped.Debug(context.Background(), "second")

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		require.Equal(t, "gpt-5", entry.ContextMap()["model"])
	}
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	l := NewNop()
	require.NotPanics(t, func() {
		l.Info(context.Background(), "noop")
	})
}
