package handler

import (
	"errors"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
)

// upstreamError maps an exchange client failure onto the API error taxonomy.
// A domain rejection and broken connectivity must stay distinguishable: the
// former means the connection works and the parameters were refused, the
// latter that the gateway could not be reached at all.
func upstreamError(err error) *endpoint.ApiError {
	var domainErr *exchange.DomainError
	if errors.As(err, &domainErr) {
		data := map[string]any{
			"upstreamCode": domainErr.Code,
			"upstreamMsg":  domainErr.Msg,
		}

		return endpoint.BadGatewayError("the exchange rejected the request", data, err)
	}

	var transportErr *exchange.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Timeout() {
			return endpoint.GatewayTimeoutError("the exchange did not respond in time", err)
		}

		data := map[string]any{}
		if transportErr.Status != 0 {
			data["upstreamStatus"] = transportErr.Status
		}
		if transportErr.Body != "" {
			data["upstreamBody"] = transportErr.Body
		}

		return endpoint.BadGatewayError("the exchange could not be reached", data, err)
	}

	return endpoint.LogInternalError("unexpected exchange client failure", err)
}
