package env

import (
	"os"
	"strings"
)

type Environment struct {
	App      AppEnvironment      `validate:"required"`
	Logs     LogsEnvironment     `validate:"required"`
	Network  NetEnvironment      `validate:"required"`
	Sentry   SentryEnvironment   `validate:"required"`
	Exchange ExchangeEnvironment `validate:"required"`
}

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
