package env

// ExchangeEnvironment holds the dashboard-facing defaults. Credentials are
// deliberately absent: the API key pair is supplied per connect request and
// lives only in the session slot, never in configuration.
type ExchangeEnvironment struct {
	DefaultGateway  string `validate:"required,hostname"`
	DefaultFiatUnit string `validate:"required,uppercase,min=3,max=5"`
	DefaultCoinID   string `validate:"required,uppercase"`
}
