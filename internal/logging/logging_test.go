package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	if LoggerFromContext(context.Background()) == nil {
		t.Fatalf("expected global logger fallback")
	}
	if LoggerFromContext(nil) == nil { //nolint:staticcheck // nil context fallback is the point
		t.Fatalf("expected global logger fallback for nil context")
	}
}

func TestContextWithLoggerRoundTrip(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := contextWithLogger(context.Background(), logger)
	LogInfo(ctx, "hello", zap.String("k", "v"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "hello" {
		t.Fatalf("expected message hello, got %q", entries[0].Message)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request ID, got %q", got)
	}
	ctx := contextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	var captured string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	h := RequestLogger()(handler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "abc-123")
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req.WithContext(ctx))

	if captured != "abc-123" {
		t.Fatalf("expected request ID abc-123 in context, got %q", captured)
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "boom", context.DeadlineExceeded)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error"] != context.DeadlineExceeded.Error() {
		t.Fatalf("expected error field, got %v", fields)
	}
}
