package exchange

import (
	"fmt"
	"sort"
	"strings"
)

// Gateway is one of the exchange's selectable base API hosts.
type Gateway struct {
	ID      string
	BaseURL string
}

var gateways = map[string]string{
	"mexc.com": "https://api.mexc.com",
	"mexc.co":  "https://api.mexc.co",
}

// ResolveGateway maps a short gateway identifier to its origin URL. Unknown
// identifiers are an error, never a silent fallback: signing requests against
// the wrong host would fail in ways the caller cannot distinguish from bad
// credentials.
func ResolveGateway(id string) (Gateway, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	base, ok := gateways[key]
	if !ok {
		return Gateway{}, fmt.Errorf("unknown gateway [%s]: choose one of %s", id, strings.Join(GatewayIDs(), ", "))
	}

	return Gateway{ID: key, BaseURL: base}, nil
}

// GatewayIDs lists the known gateway identifiers in a stable order.
func GatewayIDs() []string {
	ids := make([]string, 0, len(gateways))

	for id := range gateways {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Gateways lists the known gateways in a stable order, for the dashboard's
// host dropdown.
func Gateways() []Gateway {
	out := make([]Gateway, 0, len(gateways))

	for _, id := range GatewayIDs() {
		out = append(out, Gateway{ID: id, BaseURL: gateways[id]})
	}

	return out
}
