package log_test

import (
	"context"
	"testing"

	"shareit/pkg/log"
)

func TestContextValues(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	}
	for _, cfg := range configs {
		l := log.Init(cfg)
		ctx := log.WithUserID(log.WithRequestID(context.Background(), "abc"), 7)
		l.Infof(ctx, "booking %d created", 1)
		l.Debug(ctx, "debug line")
	}
	log.NewNop().Errorf(context.Background(), "ignored %v", "x")
}
