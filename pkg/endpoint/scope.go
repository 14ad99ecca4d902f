package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/huygnourt/p2p-proxy/pkg/portal"
)

func enrichScope(scope *sentry.Scope, r *http.Request, apiErr *ApiError) {
	if scope == nil || r == nil || apiErr == nil {
		return
	}

	scope.SetRequest(r)
	scope.SetExtra("api_error_status_text", http.StatusText(apiErr.Status))
	scope.SetExtra("api_error_message", apiErr.Message)

	if requestID := requestIDFrom(r); requestID != "" {
		scope.SetTag("http.request_id", requestID)
	}

	if apiErr.Data != nil {
		scope.SetExtra("api_error_data", apiErr.Data)
	}

	if apiErr.Err != nil {
		scope.SetExtra("api_error_cause", apiErr.Err.Error())
		scope.SetTag("api.error.cause_type", fmt.Sprintf("%T", apiErr.Err))
		scope.SetExtra("api_error_cause_chain", buildErrorChain(apiErr.Err))
	}

	if clientIP := strings.TrimSpace(portal.ParseClientIP(r)); clientIP != "" {
		scope.SetExtra("http_client_ip", clientIP)
	}
}

func requestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(portal.RequestIdKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))
}

func buildErrorChain(err error) []string {
	chain := make([]string, 0, 4)

	for current := err; current != nil; current = errors.Unwrap(current) {
		chain = append(chain, current.Error())
	}

	return chain
}
