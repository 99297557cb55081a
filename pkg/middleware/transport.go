package middleware

import (
	"net/http"
)

// Transport decorates an http.RoundTripper the same way server middleware
// decorates a handler chain.
type Transport func(http.RoundTripper) http.RoundTripper

// Chain applies transports in order, the first one sees the request last.
func Chain(base http.RoundTripper, transports ...Transport) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for _, t := range transports {
		rt = t(rt)
	}
	return rt
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
