package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cinema-client/internal/dto/response"
)

type AdminClient struct {
	*core
}

// Users handles GET /admin/users (admin only)
func (c *AdminClient) Users(ctx context.Context) ([]response.User, error) {
	var users []response.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ChangeUserRole handles PUT /admin/users/{id}/role?role=... (admin only)
func (c *AdminClient) ChangeUserRole(ctx context.Context, userID int64, role response.UserRole) (*response.User, error) {
	query := url.Values{}
	query.Set("role", string(role))

	var user response.User
	path := fmt.Sprintf("/admin/users/%d/role", userID)
	if err := c.do(ctx, http.MethodPut, path, query, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Statistics handles GET /admin/statistics (admin only)
func (c *AdminClient) Statistics(ctx context.Context) (*response.Statistics, error) {
	var stats response.Statistics
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AuditLogs handles GET /admin/audit/logs (admin only). The endpoint
// supports page/size only; size defaults to the server's 50.
func (c *AdminClient) AuditLogs(ctx context.Context, page, size int) (*response.AuditLogPage, error) {
	if size < 1 {
		size = 50
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var logs response.AuditLogPage
	if err := c.do(ctx, http.MethodGet, "/admin/audit/logs", query, nil, &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}
