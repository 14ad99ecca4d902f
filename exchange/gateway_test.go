package exchange

import (
	"strings"
	"testing"
)

func TestResolveGateway_KnownHosts(t *testing.T) {
	gw, err := ResolveGateway("mexc.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if gw.BaseURL != "https://api.mexc.com" {
		t.Fatalf("unexpected base url: %s", gw.BaseURL)
	}

	// Identifier matching is case and whitespace tolerant.
	if gw, err = ResolveGateway("  MEXC.CO "); err != nil || gw.BaseURL != "https://api.mexc.co" {
		t.Fatalf("normalized resolve failed: %v %+v", err, gw)
	}
}

func TestResolveGateway_UnknownIsRejected(t *testing.T) {
	_, err := ResolveGateway("mexc.example")
	if err == nil {
		t.Fatalf("unknown gateway must not fall back silently")
	}

	if !strings.Contains(err.Error(), "mexc.example") {
		t.Fatalf("error should name the rejected identifier: %v", err)
	}
}

func TestGateways_StableOrder(t *testing.T) {
	listed := Gateways()

	if len(listed) != 2 {
		t.Fatalf("expected two gateways, got %d", len(listed))
	}

	if listed[0].ID != "mexc.co" || listed[1].ID != "mexc.com" {
		t.Fatalf("unexpected order: %+v", listed)
	}
}
