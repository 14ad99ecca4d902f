package portal

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func ParseClientIP(r *http.Request) string {
	// prefer X-Forwarded-For if present

	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		// take first IP
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

func CloseWithLog(closer io.Closer) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		slog.Error("error closing resource", "error", err)
	}
}
