package kernel

import (
	"log"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/llogs"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:   env.Sentry.DSN,
		Debug: !env.App.IsProduction(),
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsCreds := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	net := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
		DevHost:  env.GetEnvVar("ENV_HTTP_DEV_HOST"),
	}

	sentryEnvironment := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
	}

	exchangeEnvironment := env.ExchangeEnvironment{
		DefaultGateway:  defaultVar("ENV_EXCHANGE_DEFAULT_GATEWAY", "mexc.com"),
		DefaultFiatUnit: defaultVar("ENV_EXCHANGE_DEFAULT_FIAT", exchange.DefaultFiatUnit),
		DefaultCoinID:   defaultVar("ENV_EXCHANGE_DEFAULT_COIN", exchange.DefaultCoinID),
	}

	// The default gateway must be resolvable, not just well-formed.
	if _, err := exchange.ResolveGateway(exchangeEnvironment.DefaultGateway); err != nil {
		panic(errorSuffix + "invalid [EXCHANGE] model: " + err.Error())
	}

	if rejected, _ := validate.Rejects(app); rejected {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if rejected, _ := validate.Rejects(logsCreds); rejected {
		panic(errorSuffix + "invalid [LOGS] model: " + validate.GetErrorsAsJson())
	}

	if rejected, _ := validate.Rejects(net); rejected {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if rejected, _ := validate.Rejects(sentryEnvironment); rejected {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if rejected, _ := validate.Rejects(exchangeEnvironment); rejected {
		panic(errorSuffix + "invalid [EXCHANGE] model: " + validate.GetErrorsAsJson())
	}

	environment := &env.Environment{
		App:      app,
		Logs:     logsCreds,
		Network:  net,
		Sentry:   sentryEnvironment,
		Exchange: exchangeEnvironment,
	}

	if rejected, _ := validate.Rejects(environment); rejected {
		panic(errorSuffix + "invalid proxy [ENVIRONMENT] model: " + validate.GetErrorsAsJson())
	}

	return environment
}

func defaultVar(key, fallback string) string {
	if value := env.GetEnvVar(key); value != "" {
		return value
	}

	return fallback
}
