package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID stamps every outgoing request with an X-Request-ID header so
// client and server logs can be correlated.
func RequestID() Transport {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("X-Request-ID") == "" {
				r.Header.Set("X-Request-ID", uuid.New().String())
			}
			return next.RoundTrip(r)
		})
	}
}
