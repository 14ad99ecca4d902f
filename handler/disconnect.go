package handler

import (
	"net/http"

	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/session"
)

type DisconnectHandler struct {
	Session *session.Session
}

func MakeDisconnectHandler(active *session.Session) DisconnectHandler {
	return DisconnectHandler{Session: active}
}

func (h *DisconnectHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	h.Session.Disconnect()

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.DisconnectResponse{Code: 0, Msg: "Disconnected"}); err != nil {
		return endpoint.LogInternalError("could not encode disconnect response", err)
	}

	return nil
}
