package api

import (
	"context"
	"net/http"

	"cinema-client/internal/dto/request"
)

type ProfileClient struct {
	*core
}

// ChangePassword handles POST /profile/change-password
func (c *ProfileClient) ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/profile/change-password", nil, req, nil)
}
