// Package session holds the single active exchange client for the process.
// The proxy is a single-user tool: at most one credential pair is live at a
// time, it exists only in memory, and a restart always comes up disconnected.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/huygnourt/p2p-proxy/exchange"
)

// ErrNotConnected gates every authenticated operation when no client is held.
var ErrNotConnected = errors.New("not connected: no active API credentials")

// Session is a mutex-guarded single slot. A client is always fully
// constructed and probed before it is published, so readers never observe a
// half-built client.
type Session struct {
	mu     sync.RWMutex
	client *exchange.Client
}

func New() *Session {
	return &Session{}
}

// Connect builds a client for the credential pair and gateway, verifies it
// with the boolean connection probe, and publishes it on success, replacing
// any previous client (last write wins). On probe failure the session is left
// untouched; the probe never says why it failed.
func (s *Session) Connect(ctx context.Context, creds exchange.Credentials, gateway exchange.Gateway) bool {
	client := exchange.NewClient(creds, gateway)

	if !client.TestConnection(ctx) {
		return false
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	return true
}

// Disconnect clears the slot unconditionally. Idempotent; it does not cancel
// calls already in flight under the prior credentials.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()
}

// Connected reports whether a client is currently held.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.client != nil
}

// Active returns the held client, or ErrNotConnected when the slot is empty.
func (s *Session) Active() (*exchange.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.client == nil {
		return nil, ErrNotConnected
	}

	return s.client, nil
}
