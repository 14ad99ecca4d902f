package handler

import (
	"net/http"

	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/session"
)

type StatusHandler struct {
	Session *session.Session
}

func MakeStatusHandler(active *session.Session) StatusHandler {
	return StatusHandler{Session: active}
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resp := endpoint.NewNoCacheResponse(w, r)

	data := payload.StatusResponse{
		Code: 0,
		Data: payload.StatusData{Connected: h.Session.Connected()},
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode status response", err)
	}

	return nil
}
