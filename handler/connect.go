package handler

import (
	"encoding/json"
	"net/http"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
	"github.com/huygnourt/p2p-proxy/session"
)

type ConnectHandler struct {
	Validator *portal.Validator
	Session   *session.Session
	Env       *env.Environment

	// Resolve is an injectable gateway resolver for tests; it defaults to the
	// strict production mapping.
	Resolve func(string) (exchange.Gateway, error)
}

func MakeConnectHandler(validator *portal.Validator, active *session.Session, environment *env.Environment) ConnectHandler {
	return ConnectHandler{
		Validator: validator,
		Session:   active,
		Env:       environment,
		Resolve:   exchange.ResolveGateway,
	}
}

func (h *ConnectHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	var req payload.ConnectRequest

	r.Body = http.MaxBytesReader(w, r.Body, endpoint.MaxRequestSize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return endpoint.LogBadRequestError("could not parse the given credentials.", err)
	}

	if rejected, _ := h.Validator.Rejects(req); rejected {
		return endpoint.UnprocessableEntity("API key and secret key are required", h.Validator.GetErrors())
	}

	gatewayID := req.Gateway
	if gatewayID == "" {
		gatewayID = h.Env.Exchange.DefaultGateway
	}

	// Strict resolution happens before any network call: an unknown gateway
	// is the caller's mistake, not a reason to sign against a fallback host.
	gateway, err := h.Resolve(gatewayID)
	if err != nil {
		return endpoint.BadRequestError(err.Error())
	}

	creds := exchange.Credentials{APIKey: req.APIKey, SecretKey: req.SecretKey}

	resp := endpoint.NewNoCacheResponse(w, r)

	if !h.Session.Connect(r.Context(), creds, gateway) {
		// The probe is a yes/no by contract; it never reveals why it failed.
		failure := payload.ConnectResponse{Code: -1, Msg: "Connection failed. Check your credentials."}

		if err = resp.RespondOk(failure); err != nil {
			return endpoint.LogInternalError("could not encode connect response", err)
		}

		return nil
	}

	success := payload.ConnectResponse{
		Code: 0,
		Msg:  "Connected successfully",
		Data: payload.ConnectData{Gateway: gateway.ID},
	}

	if err = resp.RespondOk(success); err != nil {
		return endpoint.LogInternalError("could not encode connect response", err)
	}

	return nil
}
