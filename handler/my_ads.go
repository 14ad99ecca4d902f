package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/huygnourt/p2p-proxy/exchange"
	"github.com/huygnourt/p2p-proxy/metal/env"
	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/session"
)

const advStatusOpen = "OPEN"
const advStatusClose = "CLOSE"

type MyAdsHandler struct {
	Session *session.Session
	Env     *env.Environment
}

func MakeMyAdsHandler(active *session.Session, environment *env.Environment) MyAdsHandler {
	return MyAdsHandler{
		Session: active,
		Env:     environment,
	}
}

// Handle serves the connected merchant's own ads. An empty advStatus means
// all ads regardless of state.
func (h *MyAdsHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	client, err := h.Session.Active()
	if err != nil {
		return endpoint.UnauthorisedError("connect with your API credentials first", err)
	}

	query := r.URL.Query()

	advStatus := strings.ToUpper(strings.TrimSpace(query.Get("advStatus")))
	if advStatus != "" && advStatus != advStatusOpen && advStatus != advStatusClose {
		return endpoint.BadRequestError("advStatus must be OPEN, CLOSE, or empty")
	}

	page, apiErr := parsePage(query.Get("page"))
	if apiErr != nil {
		return apiErr
	}

	limit, apiErr := parseLimit(query.Get("limit"))
	if apiErr != nil {
		return apiErr
	}

	filters := exchange.MyAdsFilters{
		AdvStatus: advStatus,
		CoinID:    defaultFilter(query.Get("coinId"), h.Env.Exchange.DefaultCoinID),
		Page:      page,
		Limit:     limit,
	}

	envelope, err := client.MyAds(r.Context(), filters)
	if err != nil {
		return upstreamError(err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err = resp.RespondOk(envelope); err != nil {
		return endpoint.LogInternalError("could not encode my ads response", err)
	}

	return nil
}

func parseLimit(raw string) (int, *endpoint.ApiError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return exchange.DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, endpoint.BadRequestError("limit must be a positive number")
	}

	return limit, nil
}
