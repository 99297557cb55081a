package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cinema-client/internal/booking"
	"cinema-client/internal/dto/response"
)

func availabilitySeat(id int64, row, number int, seatType response.SeatType, available, enabled bool) response.SeatAvailability {
	return response.SeatAvailability{
		SeatID:        id,
		RowNumber:     row,
		SeatNumber:    number,
		SeatType:      seatType,
		IsAvailable:   available,
		IsSeatEnabled: enabled,
	}
}

func TestRenderGridStates(t *testing.T) {
	grid := booking.BuildGrid([]response.SeatAvailability{
		availabilitySeat(1, 1, 1, response.SeatTypeStandard, true, true),
		availabilitySeat(2, 1, 2, response.SeatTypeVIP, true, true),
		availabilitySeat(3, 1, 3, response.SeatTypeStandard, false, true),
		availabilitySeat(4, 1, 4, response.SeatTypeStandard, true, false),
	})

	vip := 30.0
	selection := booking.NewSelection(&response.Screening{ID: 1, BasePrice: 20, VIPPrice: &vip}, grid)
	selection.Toggle(1)

	out := RenderGrid(grid, selection)

	assert.Contains(t, out, "S C R E E N")
	assert.Contains(t, out, "[ 1]", "selected seat")
	assert.Contains(t, out, "2V", "vip seat")
	assert.Contains(t, out, "xx", "reserved seat")
	assert.Contains(t, out, "--", "disabled seat")
	assert.Contains(t, out, "Legend:")
}

func TestRenderGridEmpty(t *testing.T) {
	out := RenderGrid(booking.BuildGrid(nil), nil)
	assert.Contains(t, out, "no seats")
}

func TestRenderSelection(t *testing.T) {
	grid := booking.BuildGrid([]response.SeatAvailability{
		availabilitySeat(1, 1, 1, response.SeatTypeStandard, true, true),
		availabilitySeat(2, 1, 2, response.SeatTypeVIP, true, true),
	})
	vip := 30.0
	selection := booking.NewSelection(&response.Screening{ID: 1, BasePrice: 20, VIPPrice: &vip}, grid)
	selection.Toggle(1)
	selection.Toggle(2)
	selection.SetTicketType(2, response.TicketTypeStudent)

	out := RenderSelection(selection)

	assert.Contains(t, out, "Row 1, Seat 1")
	assert.Contains(t, out, "Row 1, Seat 2 VIP")
	assert.Contains(t, out, "student")
	assert.Contains(t, out, "Total: 41.00")
	assert.Contains(t, out, "confirmed by the server")
}

func TestRenderSelectionEmpty(t *testing.T) {
	out := RenderSelection(nil)
	assert.True(t, strings.Contains(out, "No seats selected"))
}
