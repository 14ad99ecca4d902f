package portal

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"

// ---- Middleware / Context

type contextKey string

const RequestIdKey contextKey = "request.id"
