package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-client/internal/dto/response"
)

func seat(id int64, row, number int, seatType response.SeatType, available, enabled bool) response.SeatAvailability {
	return response.SeatAvailability{
		SeatID:        id,
		RowNumber:     row,
		SeatNumber:    number,
		SeatType:      seatType,
		IsAvailable:   available,
		IsSeatEnabled: enabled,
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		seat response.SeatAvailability
		want SeatState
	}{
		{"available standard", seat(1, 1, 1, response.SeatTypeStandard, true, true), SeatStateAvailable},
		{"available vip", seat(2, 1, 2, response.SeatTypeVIP, true, true), SeatStateVIP},
		{"reserved standard", seat(3, 1, 3, response.SeatTypeStandard, false, true), SeatStateReserved},
		{"reserved vip", seat(4, 1, 4, response.SeatTypeVIP, false, true), SeatStateReserved},
		{"disabled beats reserved", seat(5, 1, 5, response.SeatTypeStandard, false, false), SeatStateDisabled},
		{"disabled beats vip", seat(6, 1, 6, response.SeatTypeVIP, true, false), SeatStateDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stateOf(tt.seat))
		})
	}
}

func TestBuildGridOrdersRowsAndSeats(t *testing.T) {
	grid := BuildGrid([]response.SeatAvailability{
		seat(23, 2, 3, response.SeatTypeStandard, true, true),
		seat(11, 1, 1, response.SeatTypeStandard, true, true),
		seat(22, 2, 2, response.SeatTypeStandard, true, true),
		seat(12, 1, 2, response.SeatTypeVIP, true, true),
		seat(21, 2, 1, response.SeatTypeStandard, false, true),
	})

	require.Len(t, grid.Rows, 2)
	assert.Equal(t, 1, grid.Rows[0].Number)
	assert.Equal(t, 2, grid.Rows[1].Number)

	numbers := []int{}
	for _, s := range grid.Rows[1].Seats {
		numbers = append(numbers, s.SeatNumber)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestBuildGridEmpty(t *testing.T) {
	grid := BuildGrid(nil)
	assert.Empty(t, grid.Rows)
	assert.False(t, grid.Selectable(1))
}

func TestGridSelectable(t *testing.T) {
	grid := BuildGrid([]response.SeatAvailability{
		seat(1, 1, 1, response.SeatTypeStandard, true, true),
		seat(2, 1, 2, response.SeatTypeStandard, false, true),
		seat(3, 1, 3, response.SeatTypeVIP, true, false),
	})

	assert.True(t, grid.Selectable(1))
	assert.False(t, grid.Selectable(2), "reserved seat must not be selectable")
	assert.False(t, grid.Selectable(3), "disabled seat must not be selectable")
	assert.False(t, grid.Selectable(999), "unknown seat must not be selectable")
}

func TestGridSeatAt(t *testing.T) {
	grid := BuildGrid([]response.SeatAvailability{
		seat(41, 4, 1, response.SeatTypeStandard, true, true),
		seat(42, 4, 2, response.SeatTypeVIP, true, true),
	})

	found, ok := grid.SeatAt(4, 2)
	require.True(t, ok)
	assert.Equal(t, int64(42), found.SeatID)

	_, ok = grid.SeatAt(5, 1)
	assert.False(t, ok)
}
