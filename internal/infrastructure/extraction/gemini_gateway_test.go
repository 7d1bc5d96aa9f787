package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestGateway(t *testing.T, endpoint string) *GeminiGateway {
	t.Helper()
	g, err := NewGeminiGateway("test-key")
	if err != nil {
		t.Fatalf("NewGeminiGateway: %v", err)
	}
	g.endpoint = endpoint
	g.client.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return time.Millisecond
	}
	return g
}

func envelope(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(b)
}

func TestExtractFields_RetriesRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(envelope(`[{"unit":"Ocean View 3A","date":"2026-08-14"}]`)))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	raw, err := g.ExtractFields(context.Background(), "scanned text")
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}

	var fields []map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("result is not a JSON array: %v", err)
	}
	if len(fields) != 1 || fields[0]["unit"] != "Ocean View 3A" {
		t.Fatalf("unexpected fields: %s", raw)
	}
}

func TestExtractFields_GivesUpAfterThreeAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	if _, err := g.ExtractFields(context.Background(), "scanned text"); err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestExtractFields_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	if _, err := g.ExtractFields(context.Background(), "scanned text"); err == nil {
		t.Fatal("expected an error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestExtractFields_RejectsNonArrayText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(envelope(`{"unit":"not an array"}`)))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	if _, err := g.ExtractFields(context.Background(), "scanned text"); err == nil {
		t.Fatal("expected an error for a non-array payload")
	}
}

func TestMockMode(t *testing.T) {
	t.Setenv("EXTRACTION_GATEWAY_MOCK", "1")

	g, err := NewGeminiGateway("")
	if err != nil {
		t.Fatalf("NewGeminiGateway: %v", err)
	}
	raw, err := g.ExtractFields(context.Background(), "anything")
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("mock mode returns an empty array, got %s", raw)
	}
}

func TestMissingAPIKey(t *testing.T) {
	if _, err := NewGeminiGateway(""); err != ErrMissingExtractionAPIKey {
		t.Fatalf("expected ErrMissingExtractionAPIKey, got %v", err)
	}
}
