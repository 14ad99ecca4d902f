package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Response writes JSON payloads with the proxy's standard headers. Ad
// listings change second to second, so everything here is no-store; there is
// no ETag variant.
type Response struct {
	writer  http.ResponseWriter
	request *http.Request
	headers func(w http.ResponseWriter)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:  writer,
		request: request,
		headers: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", "no-store")
		},
	}
}

func (r *Response) RespondOk(payload any) error {
	w := r.writer
	headers := r.headers

	headers(w)
	w.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogBadRequestError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Bad request error: %s", msg),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func UnauthorisedError(msg string, err error) *ApiError {
	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func TooManyRequestsError(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}

func UnprocessableEntity(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Unprocessable entity: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Data:    errs,
		Err:     errors.New(message),
	}
}

// BadGatewayError reports an upstream failure while keeping the cause class
// intact: Data distinguishes a usable connection with rejected parameters
// from broken connectivity.
func BadGatewayError(msg string, data any, err error) *ApiError {
	return &ApiError{
		Message: fmt.Sprintf("Upstream error: %s", msg),
		Status:  http.StatusBadGateway,
		Data:    data,
		Err:     err,
	}
}

func GatewayTimeoutError(msg string, err error) *ApiError {
	return &ApiError{
		Message: fmt.Sprintf("Upstream timeout: %s", msg),
		Status:  http.StatusGatewayTimeout,
		Err:     err,
	}
}
