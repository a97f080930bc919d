package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

// maxErrorBodyPreview bounds how much of a response body appears in Error().
const maxErrorBodyPreview = 512

// APIError is a non-2xx response from the admin API.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Error implements error.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	if len(e.Body) > 0 {
		body := e.Body
		if len(body) > maxErrorBodyPreview {
			body = body[:maxErrorBodyPreview]
		}
		msg += ": " + string(body)
	}
	return msg
}

// Unwrap maps well-known statuses onto domain errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrAuthenticationFailed
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// IsAuthenticationFailure reports whether err is a rejected credential.
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, domain.ErrAuthenticationFailed)
}

// StatusCode extracts the HTTP status from err, or 0 if err is not an *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
