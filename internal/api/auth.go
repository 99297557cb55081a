package api

import (
	"context"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type AuthClient struct {
	*core
}

// Register handles POST /auth/register
func (c *AuthClient) Register(ctx context.Context, req *request.RegisterRequest) (*response.User, error) {
	var user response.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login handles POST /auth/login; the session cookie lands in the jar
func (c *AuthClient) Login(ctx context.Context, req *request.LoginRequest) (*response.User, error) {
	var user response.User
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser handles GET /auth/me
func (c *AuthClient) CurrentUser(ctx context.Context) (*response.User, error) {
	var user response.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout handles POST /auth/logout
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
