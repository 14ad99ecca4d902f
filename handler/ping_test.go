package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/huygnourt/p2p-proxy/handler/payload"
)

func TestPing_RespondsPong(t *testing.T) {
	h := MakePingHandler()
	rec := httptest.NewRecorder()

	if apiErr := h.Handle(rec, httptest.NewRequest("GET", "/ping", nil)); apiErr != nil {
		t.Fatalf("handle: %+v", apiErr)
	}

	var resp payload.PingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Message != "pong" || resp.Date == "" || resp.Time == "" {
		t.Fatalf("unexpected ping payload: %+v", resp)
	}
}
