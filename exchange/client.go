package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/huygnourt/p2p-proxy/pkg/auth"
)

const marketAdsPath = "/api/v3/fiat/market/ads/pagination"
const merchantAdsPath = "/api/v3/fiat/merchant/ads/pagination"

// ApiKeyHeader carries the public API key on every outbound call. The secret
// key never leaves the process: it is only ever an HMAC key.
const ApiKeyHeader = "X-MEXC-APIKEY"

const requestTimeout = 15 * time.Second
const maxResponseSize = 4 << 20

// Credentials is an opaque API key pair. Neither half is ever logged.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Client issues signed GET requests against one gateway with one credential
// pair. It is safe for concurrent use; all fields are set at construction
// and never mutated.
type Client struct {
	creds   Credentials
	gateway Gateway
	http    *http.Client
}

func NewClient(creds Credentials, gateway Gateway) *Client {
	return &Client{
		creds:   creds,
		gateway: gateway,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Gateway exposes the gateway this client was built against.
func (c *Client) Gateway() Gateway {
	return c.gateway
}

// MarketAds fetches one page of market-wide advertisements.
func (c *Client) MarketAds(ctx context.Context, filters MarketAdsFilters) (*Envelope, error) {
	return c.get(ctx, marketAdsPath, filters.params())
}

// MyAds fetches one page of the connected merchant's own advertisements.
func (c *Client) MyAds(ctx context.Context, filters MyAdsFilters) (*Envelope, error) {
	return c.get(ctx, merchantAdsPath, filters.params())
}

// SideOutcome is one half of a dual-side fetch: either the envelope or the
// error for that side, never both.
type SideOutcome struct {
	Ads *Envelope
	Err error
}

// BothSidesResult holds the independently evaluated BUY and SELL outcomes.
type BothSidesResult struct {
	Buy  SideOutcome
	Sell SideOutcome
}

// BothSides fetches the BUY and SELL books concurrently. The two calls are
// isolated: a failure on one side never aborts or masks the other, and no
// ordering between them is assumed.
func (c *Client) BothSides(ctx context.Context, filters MarketAdsFilters) BothSidesResult {
	var result BothSidesResult
	var wg sync.WaitGroup

	fetch := func(side string, out *SideOutcome) {
		defer wg.Done()

		sided := filters
		sided.Side = side

		out.Ads, out.Err = c.MarketAds(ctx, sided)
	}

	wg.Add(2)
	go fetch(SideBuy, &result.Buy)
	go fetch(SideSell, &result.Sell)
	wg.Wait()

	return result
}

// TestConnection probes the gateway with a minimal signed market query. It is
// a boolean pre-flight by contract: every error class, transport or domain,
// collapses to false and nothing ever propagates.
func (c *Client) TestConnection(ctx context.Context) bool {
	_, err := c.MarketAds(ctx, MarketAdsFilters{
		FiatUnit: DefaultFiatUnit,
		CoinID:   DefaultCoinID,
		Page:     DefaultPage,
	})

	return err == nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) (*Envelope, error) {
	url := c.gateway.BaseURL + path + "?" + auth.SignQuery(params, c.creds.SecretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build exchange request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ApiKeyHeader, c.creds.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var envelope Envelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body)), Err: err}
	}

	if envelope.Code != 0 {
		return nil, &DomainError{Code: envelope.Code, Msg: envelope.Msg}
	}

	return &envelope, nil
}
