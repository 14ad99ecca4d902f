package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/huygnourt/p2p-proxy/handler/payload"
)

func TestConfig_ListsGatewaysAndDefaults(t *testing.T) {
	h := MakeConfigHandler(testEnv())
	rec := httptest.NewRecorder()

	if apiErr := h.Handle(rec, httptest.NewRequest("GET", "/config", nil)); apiErr != nil {
		t.Fatalf("handle: %+v", apiErr)
	}

	var resp payload.ConfigResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Data.DefaultGateway != "mexc.com" || resp.Data.DefaultFiatUnit != "VND" || resp.Data.DefaultCoinID != "USDT" {
		t.Fatalf("unexpected defaults: %+v", resp.Data)
	}

	if len(resp.Data.Gateways) != 2 {
		t.Fatalf("expected both gateways, got %+v", resp.Data.Gateways)
	}

	seen := make(map[string]string, len(resp.Data.Gateways))
	for _, gw := range resp.Data.Gateways {
		seen[gw.ID] = gw.BaseURL
	}

	if seen["mexc.com"] != "https://api.mexc.com" || seen["mexc.co"] != "https://api.mexc.co" {
		t.Fatalf("unexpected gateway hosts: %v", seen)
	}

	if cache := rec.Header().Get("Cache-Control"); cache != "no-store" {
		t.Fatalf("expected no-store response, got %q", cache)
	}
}
