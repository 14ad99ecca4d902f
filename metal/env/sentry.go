package env

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
}

func (e SentryEnvironment) HasDSN() bool {
	return e.DSN != ""
}
