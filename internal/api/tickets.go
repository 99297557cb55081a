package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type TicketClient struct {
	*core
}

// QRCode handles GET /tickets/{reservationId}/qr-code and returns PNG bytes
func (c *TicketClient) QRCode(ctx context.Context, reservationID int64) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/qr-code", reservationID), nil)
}

// Verify handles GET /tickets/verify?token=...
func (c *TicketClient) Verify(ctx context.Context, token string) (map[string]any, error) {
	query := url.Values{}
	query.Set("token", token)

	var result map[string]any
	if err := c.do(ctx, http.MethodGet, "/tickets/verify", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
