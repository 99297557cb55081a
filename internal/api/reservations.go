package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type ReservationClient struct {
	*core
}

// SeatsForScreening handles GET /reservations/screenings/{id}/seats; the
// per-seat availability snapshot the seat grid is built from
func (c *ReservationClient) SeatsForScreening(ctx context.Context, screeningID int64) ([]response.SeatAvailability, error) {
	var seats []response.SeatAvailability
	path := fmt.Sprintf("/reservations/screenings/%d/seats", screeningID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// Create handles POST /reservations. Availability is re-validated server
// side; a lost seat race comes back as a conflict error.
func (c *ReservationClient) Create(ctx context.Context, req *request.CreateReservationRequest) (*response.Reservation, error) {
	var reservation response.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Get handles GET /reservations/{id}
func (c *ReservationClient) Get(ctx context.Context, id int64) (*response.Reservation, error) {
	var reservation response.Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d", id), nil, nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// My handles GET /reservations/my
func (c *ReservationClient) My(ctx context.Context) ([]response.Reservation, error) {
	var reservations []response.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations/my", nil, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Cancel handles DELETE /reservations/{id}
func (c *ReservationClient) Cancel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil, nil)
}
