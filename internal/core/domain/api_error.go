package domain

import (
	"errors"
	"net/http"
	"strconv"
)

// APIError is the single normalized failure of a reputation API call.
// StatusCode is zero when no response was received.
type APIError struct {
	Message    string
	StatusCode int
	Response   []byte
	cause      error
}

// NewRemoteError builds the error for a non-2xx response.
func NewRemoteError(statusCode int, message string, body []byte) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if message == "" {
		message = "unexpected status " + strconv.Itoa(statusCode)
	}
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		Response:   body,
		cause:      ErrRemoteRequest,
	}
}

// NewTransportError builds the error for a request that never got a response.
func NewTransportError(err error) *APIError {
	message := "network error"
	if err != nil {
		message = err.Error()
	}
	return &APIError{
		Message: message,
		cause:   errors.Join(ErrTransport, err),
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return strconv.Itoa(e.StatusCode) + ": " + e.Message
}

// Unwrap exposes ErrRemoteRequest or ErrTransport to errors.Is.
func (e *APIError) Unwrap() error {
	return e.cause
}

// HasResponse reports whether the server answered at all.
func (e *APIError) HasResponse() bool {
	return e.StatusCode != 0
}

// IsNotFound reports a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports a 401 or 403 response.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited reports a 429 response.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError reports a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCancelled reports whether err is the outcome of an aborted request.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrRequestCancelled)
}

// UserMessage returns the text a widget may show for err. It never includes
// a raw response body.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		return "Something went wrong while loading this widget."
	}
	switch {
	case !apiErr.HasResponse():
		return "Unable to reach the reputation service."
	case apiErr.IsNotFound():
		return "No reputation data found for this address."
	case apiErr.IsUnauthorized():
		return "The API key was rejected."
	case apiErr.IsRateLimited():
		return "Too many requests, please try again shortly."
	case apiErr.IsServerError():
		return "The reputation service is unavailable."
	default:
		return apiErr.Message
	}
}
