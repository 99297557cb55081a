package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type MovieClient struct {
	*core
}

// List handles GET /movies; the endpoint answers a bare array or a page
// envelope depending on the query, Page normalizes both
func (c *MovieClient) List(ctx context.Context, query request.PageQuery) (*response.Page[response.Movie], error) {
	var page response.Page[response.Movie]
	if err := c.do(ctx, http.MethodGet, "/movies", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get handles GET /movies/{id}
func (c *MovieClient) Get(ctx context.Context, id int64) (*response.Movie, error) {
	var movie response.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Popular handles GET /movies/popular
func (c *MovieClient) Popular(ctx context.Context, limit int) ([]response.Movie, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var movies []response.Movie
	if err := c.do(ctx, http.MethodGet, "/movies/popular", query, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Latest handles GET /movies/latest
func (c *MovieClient) Latest(ctx context.Context, limit int) ([]response.Movie, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var movies []response.Movie
	if err := c.do(ctx, http.MethodGet, "/movies/latest", query, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Rate handles POST /movies/{id}/rate (1-5 stars, upserts the user's rating)
func (c *MovieClient) Rate(ctx context.Context, id int64, req *request.RateMovieRequest) (*response.MovieRating, error) {
	var rating response.MovieRating
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/movies/%d/rate", id), nil, req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// UserRating handles GET /movies/{id}/rating; nil when the user has not
// rated the movie yet
func (c *MovieClient) UserRating(ctx context.Context, id int64) (*int, error) {
	var body struct {
		Rating *int `json:"rating"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d/rating", id), nil, nil, &body); err != nil {
		return nil, err
	}
	return body.Rating, nil
}

// Reviews handles GET /movies/{id}/reviews
func (c *MovieClient) Reviews(ctx context.Context, id int64, query request.PageQuery) (*response.Page[response.Review], error) {
	var page response.Page[response.Review]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d/reviews", id), query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateReview handles POST /movies/{id}/reviews
func (c *MovieClient) CreateReview(ctx context.Context, id int64, req *request.CreateReviewRequest) (*response.Review, error) {
	var review response.Review
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/movies/%d/reviews", id), nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ==================== ADMIN METHODS ====================

// Create handles POST /movies (admin only)
func (c *MovieClient) Create(ctx context.Context, req *request.CreateMovieRequest) (*response.Movie, error) {
	var movie response.Movie
	if err := c.do(ctx, http.MethodPost, "/movies", nil, req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update handles PUT /movies/{id} (admin only)
func (c *MovieClient) Update(ctx context.Context, id int64, req *request.UpdateMovieRequest) (*response.Movie, error) {
	var movie response.Movie
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", id), nil, req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete handles DELETE /movies/{id} (admin only)
func (c *MovieClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil, nil, nil)
}
