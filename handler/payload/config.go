package payload

type ConfigResponse struct {
	Code int        `json:"code"`
	Data ConfigData `json:"data"`
}

type ConfigData struct {
	Gateways        []GatewayOption `json:"gateways"`
	DefaultGateway  string          `json:"defaultGateway"`
	DefaultFiatUnit string          `json:"defaultFiatUnit"`
	DefaultCoinID   string          `json:"defaultCoinId"`
}

type GatewayOption struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl"`
}
