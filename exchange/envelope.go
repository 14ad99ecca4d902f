package exchange

import "encoding/json"

// Envelope is the exchange's response wrapper. Code zero is the sole success
// discriminator; any other value, negative codes included, is a domain-level
// failure carrying Msg. Data is kept raw because the proxy forwards it to the
// dashboard untouched.
type Envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
	Page *Page           `json:"page,omitempty"`
}

// Page carries the upstream pagination cursor for paginated ad listings.
type Page struct {
	CurrPage  int `json:"currPage"`
	TotalPage int `json:"totalPage"`
}
