package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type ScreeningClient struct {
	*core
}

// List handles GET /screenings
func (c *ScreeningClient) List(ctx context.Context, query request.PageQuery) (*response.Page[response.Screening], error) {
	var page response.Page[response.Screening]
	if err := c.do(ctx, http.MethodGet, "/screenings", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Upcoming handles GET /screenings/upcoming
func (c *ScreeningClient) Upcoming(ctx context.Context, query request.PageQuery) (*response.Page[response.Screening], error) {
	var page response.Page[response.Screening]
	if err := c.do(ctx, http.MethodGet, "/screenings/upcoming", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Range handles GET /screenings/range; start and end are zone-less ISO
// datetimes, e.g. 2026-01-02T00:00:00
func (c *ScreeningClient) Range(ctx context.Context, start, end string, query request.PageQuery) (*response.Page[response.Screening], error) {
	values := query.Values()
	values.Set("start", start)
	values.Set("end", end)

	var page response.Page[response.Screening]
	if err := c.do(ctx, http.MethodGet, "/screenings/range", values, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Repertoire handles GET /screenings/repertoire; date is 2006-01-02.
// Returns the day's screenings grouped per movie.
func (c *ScreeningClient) Repertoire(ctx context.Context, date string) ([]response.Repertoire, error) {
	query := url.Values{}
	query.Set("date", date)

	var repertoire []response.Repertoire
	if err := c.do(ctx, http.MethodGet, "/screenings/repertoire", query, nil, &repertoire); err != nil {
		return nil, err
	}
	return repertoire, nil
}

// ByMovie handles GET /screenings/movie/{movieId}
func (c *ScreeningClient) ByMovie(ctx context.Context, movieID int64, query request.PageQuery) (*response.Page[response.Screening], error) {
	var page response.Page[response.Screening]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/screenings/movie/%d", movieID), query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get handles GET /screenings/{id}
func (c *ScreeningClient) Get(ctx context.Context, id int64) (*response.Screening, error) {
	var screening response.Screening
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/screenings/%d", id), nil, nil, &screening); err != nil {
		return nil, err
	}
	return &screening, nil
}

// ==================== ADMIN METHODS ====================

// Create handles POST /screenings (admin only)
func (c *ScreeningClient) Create(ctx context.Context, req *request.CreateScreeningRequest) (*response.Screening, error) {
	var screening response.Screening
	if err := c.do(ctx, http.MethodPost, "/screenings", nil, req, &screening); err != nil {
		return nil, err
	}
	return &screening, nil
}

// Update handles PUT /screenings/{id} (admin only)
func (c *ScreeningClient) Update(ctx context.Context, id int64, req *request.UpdateScreeningRequest) (*response.Screening, error) {
	var screening response.Screening
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/screenings/%d", id), nil, req, &screening); err != nil {
		return nil, err
	}
	return &screening, nil
}

// Delete handles DELETE /screenings/{id} (admin only)
func (c *ScreeningClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/screenings/%d", id), nil, nil, nil)
}
