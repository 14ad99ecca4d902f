package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/session"
)

func testEnv() *env.Environment {
	return &env.Environment{
		App: env.AppEnvironment{Name: "p2p-proxy", Type: "local"},
		Exchange: env.ExchangeEnvironment{
			DefaultGateway:  "mexc.com",
			DefaultFiatUnit: "VND",
			DefaultCoinID:   "USDT",
		},
	}
}

// upstreamStub is a fake exchange whose behaviour can be swapped mid-test, so
// a session can be connected against a healthy probe and then driven into
// failure modes.
type upstreamStub struct {
	mu      sync.Mutex
	calls   int
	respond http.HandlerFunc
	server  *httptest.Server
}

func newUpstreamStub(t *testing.T) *upstreamStub {
	t.Helper()

	stub := &upstreamStub{}
	stub.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"data":[]}`))
	}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.calls++
		respond := stub.respond
		stub.mu.Unlock()

		respond(w, r)
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *upstreamStub) gateway() exchange.Gateway {
	return exchange.Gateway{ID: "test-gw", BaseURL: s.server.URL}
}

func (s *upstreamStub) setResponse(respond http.HandlerFunc) {
	s.mu.Lock()
	s.respond = respond
	s.mu.Unlock()
}

func (s *upstreamStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

func connectedSession(t *testing.T, stub *upstreamStub) *session.Session {
	t.Helper()

	active := session.New()
	creds := exchange.Credentials{APIKey: "pk", SecretKey: "sk"}

	if !active.Connect(context.Background(), creds, stub.gateway()) {
		t.Fatalf("could not connect test session")
	}

	return active
}
