package kernel

import (
	"context"
	"fmt"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/limiter"
	"github.com/huygnourt/p2p-proxy/pkg/llogs"
	"github.com/huygnourt/p2p-proxy/pkg/middleware"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
	"github.com/huygnourt/p2p-proxy/pkg/scheduler"
	"github.com/huygnourt/p2p-proxy/session"
)

// Limiter records for identities idle this many windows are swept away.
const sweepIdleWindows = 60
const sweepCadence = "@every 1m"

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	session   *session.Session
	limiter   *limiter.MemoryLimiter
	sweeper   *scheduler.Scheduler
}

func MakeApp(environment *env.Environment, validator *portal.Validator) (*App, error) {
	active := session.New()
	requests := limiter.NewMemoryLimiter(middleware.RequestWindow, middleware.MaxRequestsPerWindow)

	sweeper, err := scheduler.New(sweepCadence, func(context.Context) error {
		if removed := requests.Sweep(time.Now(), sweepIdleWindows); removed > 0 {
			slog.Debug("swept idle rate-limiter records", slog.Int("removed", removed))
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the limiter sweeper: %w", err)
	}

	app := App{
		env:       environment,
		validator: validator,
		logs:      MakeLogs(environment),
		sentry:    MakeSentry(environment),
		session:   active,
		limiter:   requests,
		sweeper:   sweeper,
	}

	router := Router{
		Env:       environment,
		Validator: validator,
		Session:   active,
		Mux:       baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			RequestID: middleware.RequestIDMiddleware{},
			RateLimit: middleware.MakeRateLimitMiddleware(requests),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Connect()
	router.Disconnect()
	router.Status()
	router.Config()
	router.MarketAds()
	router.MyAds()
	router.Ping()
}

// StartSweeper begins the periodic rate-limiter sweep; it stops when ctx is
// cancelled.
func (a *App) StartSweeper(ctx context.Context) error {
	return a.sweeper.Start(ctx)
}
