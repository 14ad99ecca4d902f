package exchange

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// DomainError is an upstream response with a non-zero result code: the
// connection works, the exchange rejected the request itself. Code and Msg
// are carried verbatim.
type DomainError struct {
	Code int
	Msg  string
}

func (e *DomainError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unknown error"
	}

	return fmt.Sprintf("exchange error: %s (code %d)", msg, e.Code)
}

// TransportError is a failure to obtain a well-formed upstream response:
// network errors, timeouts, or a non-2xx HTTP status. Status is zero when no
// response was received; Body holds the raw payload when one was.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("exchange transport error: HTTP %d: %s", e.Status, e.Body)
	}

	if e.Err != nil {
		return "exchange transport error: " + e.Err.Error()
	}

	return "exchange transport error"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline rather than a refusal.
func (e *TransportError) Timeout() bool {
	if e.Err == nil {
		return false
	}

	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
