package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Client is the gateway to the cinema REST API. All resource groups share
// one core: one base URL, one http.Client whose cookie jar carries the
// session, one request wrapper with uniform error normalization.
type Client struct {
	Auth         *AuthClient
	Movies       *MovieClient
	Rooms        *RoomClient
	Screenings   *ScreeningClient
	Schedules    *ScheduleClient
	Reservations *ReservationClient
	Payments     *PaymentClient
	Profile      *ProfileClient
	Tickets      *TicketClient
	Admin        *AdminClient
}

type core struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	c := &core{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With(zap.String("component", "api")),
	}

	return &Client{
		Auth:         &AuthClient{core: c},
		Movies:       &MovieClient{core: c},
		Rooms:        &RoomClient{core: c},
		Screenings:   &ScreeningClient{core: c},
		Schedules:    &ScheduleClient{core: c},
		Reservations: &ReservationClient{core: c},
		Payments:     &PaymentClient{core: c},
		Profile:      &ProfileClient{core: c},
		Tickets:      &TicketClient{core: c},
		Admin:        &AdminClient{core: c},
	}
}

// do issues one API request. body is JSON-encoded when non-nil, a JSON
// response is decoded into out when out is non-nil. Non-2xx responses are
// normalized: 401 becomes ErrUnauthorized, everything else carries the
// server's message field or the HTTP status fallback.
func (c *core) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeError(resp, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	// Some endpoints answer 200 with an empty body (e.g. logout)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw fetches a binary resource (e.g. the PNG ticket QR code)
func (c *core) doRaw(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.normalizeError(resp, method, path)
	}

	return io.ReadAll(resp.Body)
}

func (c *core) normalizeError(resp *http.Response, method, path string) error {
	var serverMsg struct {
		Message string `json:"message"`
	}
	if data, err := io.ReadAll(resp.Body); err == nil {
		// A missing or non-JSON body falls back to the generic message
		_ = json.Unmarshal(data, &serverMsg)
	}

	apiErr := newError(resp.StatusCode, serverMsg.Message)

	c.log.Warn("API error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", apiErr.Message),
	)

	return apiErr
}
