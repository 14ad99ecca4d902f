package payload

type ConnectRequest struct {
	APIKey    string `json:"apiKey" validate:"required"`
	SecretKey string `json:"secretKey" validate:"required"`
	Gateway   string `json:"gateway" validate:"omitempty,hostname"`
}

type ConnectResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data ConnectData `json:"data,omitempty"`
}

type ConnectData struct {
	Gateway string `json:"gateway,omitempty"`
}

type DisconnectResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type StatusResponse struct {
	Code int        `json:"code"`
	Data StatusData `json:"data"`
}

type StatusData struct {
	Connected bool `json:"connected"`
}
