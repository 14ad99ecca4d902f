package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	"github.com/huygnourt/p2p-proxy/metal/kernel"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
)

func main() {
	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("Error loading the environment: " + err.Error())
	}

	app, err := kernel.MakeApp(environment, validate)
	if err != nil {
		panic("Error bootstrapping the application: " + err.Error())
	}

	defer app.CloseLogs()

	app.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = app.StartSweeper(ctx); err != nil {
		panic("Error starting the limiter sweeper: " + err.Error())
	}

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      environment.Network.DevHost,
		Wrap:         app.GetSentry().Handler.Handle,
	})

	addr := environment.Network.GetHostURL()
	server := &baseHttp.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err = endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error running server", "error", err)
		panic("Error running server: " + err.Error())
	}
}
