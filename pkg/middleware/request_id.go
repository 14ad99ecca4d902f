package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
)

// RequestIDMiddleware guarantees every request carries an id: an inbound
// X-Request-ID is honoured, otherwise one is generated. The id is attached to
// the request context and echoed on the response for log correlation.
type RequestIDMiddleware struct{}

func (m RequestIDMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		requestID := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), portal.RequestIdKey, requestID)

		w.Header().Set(portal.RequestIDHeader, requestID)

		return next(w, r.WithContext(ctx))
	}
}
