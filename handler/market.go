package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/handler/payload"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/session"
)

type MarketHandler struct {
	Session *session.Session
	Env     *env.Environment
}

func MakeMarketHandler(active *session.Session, environment *env.Environment) MarketHandler {
	return MarketHandler{
		Session: active,
		Env:     environment,
	}
}

// Handle serves the market-wide ads table. With an explicit side it forwards
// one signed query; without one it fetches BUY and SELL concurrently and
// reports each side's outcome on its own.
func (h *MarketHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	client, err := h.Session.Active()
	if err != nil {
		return endpoint.UnauthorisedError("connect with your API credentials first", err)
	}

	query := r.URL.Query()

	side := strings.ToUpper(strings.TrimSpace(query.Get("side")))
	if side != "" && !exchange.ValidSide(side) {
		return endpoint.BadRequestError("side must be BUY or SELL")
	}

	page, apiErr := parsePage(query.Get("page"))
	if apiErr != nil {
		return apiErr
	}

	filters := exchange.MarketAdsFilters{
		Side:        side,
		FiatUnit:    defaultFilter(query.Get("fiatUnit"), h.Env.Exchange.DefaultFiatUnit),
		CoinID:      defaultFilter(query.Get("coinId"), h.Env.Exchange.DefaultCoinID),
		Page:        page,
		Amount:      strings.TrimSpace(query.Get("amount")),
		Quantity:    strings.TrimSpace(query.Get("quantity")),
		CountryCode: strings.TrimSpace(query.Get("countryCode")),
		PayMethod:   strings.TrimSpace(query.Get("payMethod")),
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if side == "" {
		result := client.BothSides(r.Context(), filters)

		both := payload.BothSidesResponse{
			Buy:  sidePayload(result.Buy),
			Sell: sidePayload(result.Sell),
		}

		if err = resp.RespondOk(both); err != nil {
			return endpoint.LogInternalError("could not encode market ads response", err)
		}

		return nil
	}

	envelope, err := client.MarketAds(r.Context(), filters)
	if err != nil {
		return upstreamError(err)
	}

	if err = resp.RespondOk(envelope); err != nil {
		return endpoint.LogInternalError("could not encode market ads response", err)
	}

	return nil
}

func sidePayload(outcome exchange.SideOutcome) any {
	if outcome.Err != nil {
		return payload.SideError{Error: outcome.Err.Error()}
	}

	return outcome.Ads
}

func parsePage(raw string) (int, *endpoint.ApiError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return exchange.DefaultPage, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, endpoint.BadRequestError("page must be a positive number")
	}

	return page, nil
}

func defaultFilter(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	return value
}
