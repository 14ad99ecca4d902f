package kernel

import (
	baseHttp "net/http"

	"github.com/huygnourt/p2p-proxy/handler"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/pkg/middleware"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
	"github.com/huygnourt/p2p-proxy/session"
)

type Router struct {
	Env       *env.Environment
	Validator *portal.Validator
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Session   *session.Session
}

// PipelineFor wraps a handler with the shared middleware: request ids first,
// then the per-IP rate limit. Every route goes through both; the session gate
// lives inside the handlers that need it.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.RequestID.Handle,
			r.Pipeline.RateLimit.Handle,
		),
	)
}

func (r *Router) Connect() {
	abstract := handler.MakeConnectHandler(r.Validator, r.Session, r.Env)

	r.Mux.HandleFunc("POST /connect", r.PipelineFor(abstract.Handle))
}

func (r *Router) Disconnect() {
	abstract := handler.MakeDisconnectHandler(r.Session)

	r.Mux.HandleFunc("POST /disconnect", r.PipelineFor(abstract.Handle))
}

func (r *Router) Status() {
	abstract := handler.MakeStatusHandler(r.Session)

	r.Mux.HandleFunc("GET /status", r.PipelineFor(abstract.Handle))
}

func (r *Router) Config() {
	abstract := handler.MakeConfigHandler(r.Env)

	r.Mux.HandleFunc("GET /config", r.PipelineFor(abstract.Handle))
}

func (r *Router) MarketAds() {
	abstract := handler.MakeMarketHandler(r.Session, r.Env)

	r.Mux.HandleFunc("GET /market/ads", r.PipelineFor(abstract.Handle))
}

func (r *Router) MyAds() {
	abstract := handler.MakeMyAdsHandler(r.Session, r.Env)

	r.Mux.HandleFunc("GET /my/ads", r.PipelineFor(abstract.Handle))
}

func (r *Router) Ping() {
	abstract := handler.MakePingHandler()

	r.Mux.HandleFunc("GET /ping", r.PipelineFor(abstract.Handle))
}
