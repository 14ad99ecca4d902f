package endpoint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
)

func TestNewApiHandlerWritesErrorResponse(t *testing.T) {
	fn := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		return UnprocessableEntity("bad form", map[string]any{"apiKey": "required"})
	})

	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest("POST", "/connect", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Status != http.StatusUnprocessableEntity || resp.Error == "" {
		t.Fatalf("unexpected body: %+v", resp)
	}

	data, ok := resp.Data.(map[string]any)
	if !ok || data["apiKey"] != "required" {
		t.Fatalf("validation errors not forwarded: %+v", resp.Data)
	}
}

func TestNewApiHandlerPassesThroughSuccess(t *testing.T) {
	fn := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		w.WriteHeader(http.StatusOK)
		return nil
	})

	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest("GET", "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("success path should not write a body, got %q", rec.Body.String())
	}
}

func TestGetSentryLevel(t *testing.T) {
	cases := map[int]sentry.Level{
		http.StatusUnauthorized:        sentry.LevelInfo,
		http.StatusForbidden:           sentry.LevelInfo,
		http.StatusNotFound:            sentry.LevelInfo,
		http.StatusTooManyRequests:     sentry.LevelInfo,
		http.StatusBadRequest:          sentry.LevelError,
		http.StatusBadGateway:          sentry.LevelError,
		http.StatusGatewayTimeout:      sentry.LevelError,
		http.StatusInternalServerError: sentry.LevelError,
	}

	for status, want := range cases {
		if got := getSentryLevel(status); got != want {
			t.Fatalf("status %d: expected %s, got %s", status, want, got)
		}
	}
}
