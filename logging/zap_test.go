package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZap(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedZap(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	if logs.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", logs.Len())
	}

	entries := logs.All()
	wantLevels := []zapcore.Level{
		zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel,
	}
	wantMsgs := []string{"dbg", "inf", "wrn", "err"}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d: level %v, want %v", i, e.Level, wantLevels[i])
		}
		if e.Message != wantMsgs[i] {
			t.Fatalf("entry %d: msg %q, want %q", i, e.Message, wantMsgs[i])
		}
	}
}

func TestZapLogger_With_AddsAttributes(t *testing.T) {
	log, logs := newObservedZap(t)

	log.With("component", "rest").Info(context.Background(), "dispatched", "path", "users")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "rest" || fields["path"] != "users" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
