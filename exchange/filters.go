package exchange

import "strconv"

const DefaultFiatUnit = "VND"
const DefaultCoinID = "USDT"
const DefaultPage = 1
const DefaultLimit = 10

const SideBuy = "BUY"
const SideSell = "SELL"

// ValidSide reports whether side is one of the two trade directions.
func ValidSide(side string) bool {
	return side == SideBuy || side == SideSell
}

// MarketAdsFilters are the market-wide ads query criteria. Zero values fall
// back to the exchange defaults or are dropped from the signed payload
// entirely; a filter left empty never reaches the wire.
type MarketAdsFilters struct {
	Side        string
	FiatUnit    string
	CoinID      string
	Page        int
	Amount      string
	Quantity    string
	CountryCode string
	PayMethod   string
}

func (f MarketAdsFilters) params() map[string]string {
	params := map[string]string{
		"fiatUnit": defaultString(f.FiatUnit, DefaultFiatUnit),
		"coinId":   defaultString(f.CoinID, DefaultCoinID),
		"page":     strconv.Itoa(defaultPage(f.Page)),
	}

	putNonEmpty(params, "side", f.Side)
	putNonEmpty(params, "amount", f.Amount)
	putNonEmpty(params, "quantity", f.Quantity)
	putNonEmpty(params, "countryCode", f.CountryCode)
	putNonEmpty(params, "payMethod", f.PayMethod)

	return params
}

// MyAdsFilters are the self-owned merchant ads query criteria. AdvStatus may
// be OPEN, CLOSE, or empty for all.
type MyAdsFilters struct {
	AdvStatus string
	CoinID    string
	Page      int
	Limit     int
}

func (f MyAdsFilters) params() map[string]string {
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	params := map[string]string{
		"coinId": defaultString(f.CoinID, DefaultCoinID),
		"page":   strconv.Itoa(defaultPage(f.Page)),
		"limit":  strconv.Itoa(limit),
	}

	putNonEmpty(params, "advStatus", f.AdvStatus)

	return params
}

func putNonEmpty(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func defaultPage(page int) int {
	if page < 1 {
		return DefaultPage
	}

	return page
}
