package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logger logs every outgoing API request
func Logger(logger *zap.Logger) Transport {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(r)

			duration := time.Since(start)

			if err != nil {
				logger.Warn("HTTP request failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", duration),
					zap.Error(err),
				)
				return nil, err
			}

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", duration),
			)

			return resp, nil
		})
	}
}
