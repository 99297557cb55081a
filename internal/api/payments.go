package api

import (
	"context"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type PaymentClient struct {
	*core
}

// Process handles POST /payments/process
func (c *PaymentClient) Process(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentResult, error) {
	var result response.PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payments/process", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
