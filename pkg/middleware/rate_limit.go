package middleware

import (
	"net/http"
	"time"

	"github.com/huygnourt/p2p-proxy/pkg/endpoint"
	"github.com/huygnourt/p2p-proxy/pkg/limiter"
	"github.com/huygnourt/p2p-proxy/pkg/portal"
)

// The exchange allows 10 requests per second per client, so the proxy
// enforces the same budget per caller IP before anything is signed or sent.
const RequestWindow = time.Second
const MaxRequestsPerWindow = 10

// RateLimitMiddleware admits or rejects every inbound request against a
// per-IP sliding window. Rejections answer 429; the condition self-clears
// when the window rolls, so the client can simply retry.
type RateLimitMiddleware struct {
	Limiter *limiter.MemoryLimiter

	// now is an injectable time source for deterministic tests.
	now func() time.Time
}

func MakeRateLimitMiddleware(lim *limiter.MemoryLimiter) RateLimitMiddleware {
	return RateLimitMiddleware{
		Limiter: lim,
		now:     time.Now,
	}
}

func (m RateLimitMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if m.Limiter == nil {
			return endpoint.InternalError("rate limiter is not configured")
		}

		clock := m.now
		if clock == nil {
			clock = time.Now
		}

		identity := portal.ParseClientIP(r)

		if !m.Limiter.Admit(identity, clock()) {
			return endpoint.TooManyRequestsError("maximum 10 requests per second, retry shortly")
		}

		return next(w, r)
	}
}
