package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type RoomClient struct {
	*core
}

// List handles GET /rooms
func (c *RoomClient) List(ctx context.Context) ([]response.Room, error) {
	var rooms []response.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Get handles GET /rooms/{id}
func (c *RoomClient) Get(ctx context.Context, id int64) (*response.Room, error) {
	var room response.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d", id), nil, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Seats handles GET /rooms/{id}/seats
func (c *RoomClient) Seats(ctx context.Context, id int64) ([]response.Seat, error) {
	var seats []response.Seat
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/seats", id), nil, nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// ==================== ADMIN METHODS ====================

// Create handles POST /rooms (admin only)
func (c *RoomClient) Create(ctx context.Context, req *request.CreateRoomRequest) (*response.Room, error) {
	var room response.Room
	if err := c.do(ctx, http.MethodPost, "/rooms", nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Update handles PUT /rooms/{id} (admin only)
func (c *RoomClient) Update(ctx context.Context, id int64, req *request.UpdateRoomRequest) (*response.Room, error) {
	var room response.Room
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/rooms/%d", id), nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete handles DELETE /rooms/{id} (admin only)
func (c *RoomClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil, nil)
}

// Duplicate handles POST /rooms/{id}/duplicate (admin only)
func (c *RoomClient) Duplicate(ctx context.Context, id int64, req *request.DuplicateRoomRequest) (*response.Room, error) {
	var room response.Room
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/rooms/%d/duplicate", id), nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateBulk handles POST /rooms/bulk (admin only)
func (c *RoomClient) CreateBulk(ctx context.Context, req *request.BulkRoomsRequest) ([]response.Room, error) {
	var rooms []response.Room
	if err := c.do(ctx, http.MethodPost, "/rooms/bulk", nil, req, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
