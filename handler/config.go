package handler

import (
	"net/http"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
)

type ConfigHandler struct {
	Env *env.Environment
}

func MakeConfigHandler(environment *env.Environment) ConfigHandler {
	return ConfigHandler{Env: environment}
}

// Handle answers the dashboard's boot request: selectable gateways plus the
// filter defaults for the dropdowns.
func (h *ConfigHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	gateways := make([]payload.GatewayOption, 0, 2)

	for _, gw := range exchange.Gateways() {
		gateways = append(gateways, payload.GatewayOption{ID: gw.ID, BaseURL: gw.BaseURL})
	}

	data := payload.ConfigResponse{
		Code: 0,
		Data: payload.ConfigData{
			Gateways:        gateways,
			DefaultGateway:  h.Env.Exchange.DefaultGateway,
			DefaultFiatUnit: h.Env.Exchange.DefaultFiatUnit,
			DefaultCoinID:   h.Env.Exchange.DefaultCoinID,
		},
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode config response", err)
	}

	return nil
}
