package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
	"github.com/huygnourt/p2p-proxy/session"
)

func makeTestConnectHandler(stub *upstreamStub, active *session.Session) ConnectHandler {
	h := MakeConnectHandler(portal.GetDefaultValidator(), active, testEnv())

	h.Resolve = func(id string) (exchange.Gateway, error) {
		if id == "test-gw" {
			return stub.gateway(), nil
		}

		return exchange.Gateway{}, errors.New("unknown gateway [" + id + "]")
	}

	return h
}

func postConnect(t *testing.T, h ConnectHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/connect", strings.NewReader(body))
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		rec.WriteHeader(err.Status)
	}

	return rec
}

func TestConnect_MissingCredentialsRejected(t *testing.T) {
	stub := newUpstreamStub(t)
	active := session.New()
	h := makeTestConnectHandler(stub, active)

	rec := postConnect(t, h, `{"apiKey":"","secretKey":""}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}

	if stub.callCount() != 0 {
		t.Fatalf("no upstream call should be made for invalid input")
	}

	if active.Connected() {
		t.Fatalf("session must stay disconnected")
	}
}

func TestConnect_UnknownGatewayRejectedBeforeNetwork(t *testing.T) {
	stub := newUpstreamStub(t)
	h := makeTestConnectHandler(stub, session.New())

	rec := postConnect(t, h, `{"apiKey":"pk","secretKey":"sk","gateway":"mexc.example"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}

	if stub.callCount() != 0 {
		t.Fatalf("gateway validation must precede any network call, saw %d", stub.callCount())
	}
}

func TestConnect_ProbeFailureIsGeneric(t *testing.T) {
	stub := newUpstreamStub(t)
	stub.setResponse(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":700002,"msg":"api key info invalid"}`))
	})

	active := session.New()
	h := makeTestConnectHandler(stub, active)

	rec := postConnect(t, h, `{"apiKey":"pk","secretKey":"sk","gateway":"test-gw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp payload.ConnectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Code != -1 {
		t.Fatalf("expected failure code, got %d", resp.Code)
	}

	// The probe must not leak the upstream failure reason.
	if strings.Contains(resp.Msg, "api key info invalid") {
		t.Fatalf("probe leaked upstream detail: %s", resp.Msg)
	}

	if active.Connected() {
		t.Fatalf("failed probe must not publish a session")
	}
}

func TestConnect_SuccessPublishesSession(t *testing.T) {
	stub := newUpstreamStub(t)
	active := session.New()
	h := makeTestConnectHandler(stub, active)

	rec := postConnect(t, h, `{"apiKey":"pk","secretKey":"sk","gateway":"test-gw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp payload.ConnectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Code != 0 || resp.Data.Gateway != "test-gw" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if !active.Connected() {
		t.Fatalf("session should be connected")
	}
}
