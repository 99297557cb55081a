package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type ScheduleClient struct {
	*core
}

// List handles GET /schedules
func (c *ScheduleClient) List(ctx context.Context) ([]response.Schedule, error) {
	var schedules []response.Schedule
	if err := c.do(ctx, http.MethodGet, "/schedules", nil, nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// Get handles GET /schedules/{id}
func (c *ScheduleClient) Get(ctx context.Context, id int64) (*response.Schedule, error) {
	var schedule response.Schedule
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/schedules/%d", id), nil, nil, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create handles POST /schedules (admin only)
func (c *ScheduleClient) Create(ctx context.Context, req *request.CreateScheduleRequest) (*response.Schedule, error) {
	var schedule response.Schedule
	if err := c.do(ctx, http.MethodPost, "/schedules", nil, req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Update handles PUT /schedules/{id} (admin only)
func (c *ScheduleClient) Update(ctx context.Context, id int64, req *request.UpdateScheduleRequest) (*response.Schedule, error) {
	var schedule response.Schedule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/schedules/%d", id), nil, req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Delete handles DELETE /schedules/{id} (admin only)
func (c *ScheduleClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/schedules/%d", id), nil, nil, nil)
}

// Generate handles POST /schedules/{id}/generate (admin only); materializes
// screenings for the schedule window
func (c *ScheduleClient) Generate(ctx context.Context, id int64) ([]response.Screening, error) {
	var screenings []response.Screening
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/schedules/%d/generate", id), nil, nil, &screenings); err != nil {
		return nil, err
	}
	return screenings, nil
}
