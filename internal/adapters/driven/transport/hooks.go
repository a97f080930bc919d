package transport

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// RequestHook runs before an authenticated request is sent.
// Returning an error aborts the request with that error.
type RequestHook func(req *http.Request) error

// ResponseHook runs after every authenticated response or failure.
// resp is nil when err is non-nil. The returned error replaces err.
type ResponseHook func(req *http.Request, resp *driven.Response, err error) error

// RateLimitHook delays requests to stay within rps requests per second.
// The wait is bounded by the request context.
func RateLimitHook(rps float64, burst int) RequestHook {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(req *http.Request) error {
		return limiter.Wait(req.Context())
	}
}
