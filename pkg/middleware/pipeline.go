package middleware

import (
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
)

type Pipeline struct {
	RequestID RequestIDMiddleware
	RateLimit RateLimitMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
