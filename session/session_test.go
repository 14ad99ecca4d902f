package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/huygnourt/p2p-proxy/exchange"
)

func stubGateway(t *testing.T, calls *atomic.Int64, body string) exchange.Gateway {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return exchange.Gateway{ID: "test", BaseURL: srv.URL}
}

func TestSession_StartsDisconnected(t *testing.T) {
	s := New()

	if s.Connected() {
		t.Fatalf("fresh session should be disconnected")
	}

	if _, err := s.Active(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestSession_ConnectPublishesOnProbeSuccess(t *testing.T) {
	s := New()
	gw := stubGateway(t, nil, `{"code":0,"data":[]}`)

	ok := s.Connect(context.Background(), exchange.Credentials{APIKey: "k", SecretKey: "s"}, gw)
	if !ok {
		t.Fatalf("connect should succeed")
	}

	if !s.Connected() {
		t.Fatalf("session should report connected")
	}

	client, err := s.Active()
	if err != nil || client == nil {
		t.Fatalf("active client missing: %v", err)
	}
}

func TestSession_ProbeFailureLeavesStateUntouched(t *testing.T) {
	s := New()

	good := stubGateway(t, nil, `{"code":0,"data":[]}`)
	if !s.Connect(context.Background(), exchange.Credentials{APIKey: "k", SecretKey: "s"}, good) {
		t.Fatalf("seed connect failed")
	}

	held, _ := s.Active()

	bad := stubGateway(t, nil, `{"code":-1,"msg":"invalid key"}`)
	if s.Connect(context.Background(), exchange.Credentials{APIKey: "x", SecretKey: "y"}, bad) {
		t.Fatalf("connect should fail when the probe fails")
	}

	// A failed connect must not replace or clear the prior client.
	still, err := s.Active()
	if err != nil || still != held {
		t.Fatalf("failed connect mutated the session")
	}
}

func TestSession_DisconnectGatesAgain(t *testing.T) {
	s := New()
	gw := stubGateway(t, nil, `{"code":0,"data":[]}`)

	s.Connect(context.Background(), exchange.Credentials{APIKey: "k", SecretKey: "s"}, gw)
	s.Disconnect()

	if s.Connected() {
		t.Fatalf("session should be disconnected")
	}

	if _, err := s.Active(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("gate should reject after disconnect, got %v", err)
	}

	// Idempotent.
	s.Disconnect()
}
