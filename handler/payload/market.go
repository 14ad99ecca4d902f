package payload

// BothSidesResponse pairs the independently fetched BUY and SELL outcomes.
// Each side is either the upstream envelope or a SideError; one side failing
// never hides the other.
type BothSidesResponse struct {
	Buy  any `json:"buy"`
	Sell any `json:"sell"`
}

type SideError struct {
	Error string `json:"error"`
}
