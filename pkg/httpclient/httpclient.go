package httpclient

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"go.uber.org/zap"

	"cinema-client/pkg/middleware"
	"cinema-client/pkg/utils"
)

// New builds the http.Client shared by all API calls. The cookie jar carries
// the server session, requests go through the logging and request-id
// transports.
func New(config utils.APIConfig, logger *zap.Logger) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := &http.Client{
		Jar:     jar,
		Timeout: timeout,
		Transport: middleware.Chain(http.DefaultTransport,
			middleware.RequestID(),
			middleware.Logger(logger),
		),
	}

	return client, nil
}
