package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-client/internal/dto/response"
)

func floatPtr(v float64) *float64 { return &v }

func testScreening(basePrice float64, vipPrice *float64) *response.Screening {
	return &response.Screening{
		ID:        7,
		BasePrice: basePrice,
		VIPPrice:  vipPrice,
	}
}

func testGrid() *Grid {
	return BuildGrid([]response.SeatAvailability{
		seat(1, 1, 1, response.SeatTypeStandard, true, true),
		seat(2, 1, 2, response.SeatTypeStandard, true, true),
		seat(3, 1, 3, response.SeatTypeVIP, true, true),
		seat(4, 2, 1, response.SeatTypeStandard, false, true),
		seat(5, 2, 2, response.SeatTypeStandard, true, false),
	})
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(response.TicketTypeNormal))
	assert.Equal(t, 0.8, Multiplier(response.TicketTypeReduced))
	assert.Equal(t, 0.7, Multiplier(response.TicketTypeStudent))
	assert.Equal(t, 1.0, Multiplier(response.TicketType("BOGUS")))
}

func TestUnitPrice(t *testing.T) {
	standard := seat(1, 1, 1, response.SeatTypeStandard, true, true)
	vip := seat(3, 1, 3, response.SeatTypeVIP, true, true)

	withVIP := testScreening(20, floatPtr(30))
	withoutVIP := testScreening(20, nil)

	assert.Equal(t, 20.0, UnitPrice(standard, withVIP))
	assert.Equal(t, 30.0, UnitPrice(vip, withVIP))
	assert.Equal(t, 20.0, UnitPrice(vip, withoutVIP), "VIP seat falls back to base price without a VIP price")
}

func TestToggleDefaultsToNormal(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())

	require.True(t, selection.Toggle(1))
	require.True(t, selection.Contains(1))

	lines := selection.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, response.TicketTypeNormal, lines[0].TicketType)
}

func TestToggleIsSelfInverse(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())

	selection.Toggle(1)
	selection.SetTicketType(1, response.TicketTypeStudent)
	selection.Toggle(1)

	assert.False(t, selection.Contains(1))
	assert.True(t, selection.Empty())

	// Re-selecting starts from the default type again
	selection.Toggle(1)
	lines := selection.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, response.TicketTypeNormal, lines[0].TicketType)
}

func TestToggleRefusesUnselectableSeats(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())

	assert.False(t, selection.Toggle(4), "reserved seat")
	assert.False(t, selection.Toggle(5), "disabled seat")
	assert.False(t, selection.Toggle(999), "unknown seat")
	assert.True(t, selection.Empty())
}

func TestSetTicketTypeOnAbsentSeatIsNoOp(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())

	selection.SetTicketType(1, response.TicketTypeStudent)
	assert.True(t, selection.Empty())
	assert.False(t, selection.Contains(1))
}

func TestSetTicketTypeRejectsUnknownType(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())
	selection.Toggle(1)

	selection.SetTicketType(1, response.TicketType("SENIOR"))

	lines := selection.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, response.TicketTypeNormal, lines[0].TicketType)
}

func TestRemoveIsIdempotent(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())
	selection.Toggle(1)
	selection.Toggle(2)

	selection.Remove(1)
	selection.Remove(1)
	selection.Remove(999)

	assert.Equal(t, 1, selection.Count())
	assert.True(t, selection.Contains(2))
}

func TestItemsPreserveSelectionOrder(t *testing.T) {
	selection := NewSelection(testScreening(20, nil), testGrid())
	selection.Toggle(3)
	selection.Toggle(1)
	selection.Toggle(2)
	selection.Remove(1)

	ids := []int64{}
	for _, line := range selection.Items() {
		ids = append(ids, line.SeatID)
	}
	assert.Equal(t, []int64{3, 2}, ids)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Selection)
		screen *response.Screening
		want   float64
	}{
		{
			name:   "empty selection",
			setup:  func(s *Selection) {},
			screen: testScreening(20, nil),
			want:   0,
		},
		{
			name: "normal plus student",
			setup: func(s *Selection) {
				s.Toggle(1)
				s.Toggle(2)
				s.SetTicketType(2, response.TicketTypeStudent)
			},
			screen: testScreening(20, floatPtr(30)),
			want:   20*1.0 + 20*0.7,
		},
		{
			name: "reduced standard seat",
			setup: func(s *Selection) {
				s.Toggle(1)
				s.SetTicketType(1, response.TicketTypeReduced)
			},
			screen: testScreening(20, nil),
			want:   16,
		},
		{
			name: "vip seat uses vip price",
			setup: func(s *Selection) {
				s.Toggle(3)
				s.SetTicketType(3, response.TicketTypeStudent)
			},
			screen: testScreening(20, floatPtr(30)),
			want:   30 * 0.7,
		},
		{
			name: "vip seat without vip price",
			setup: func(s *Selection) {
				s.Toggle(3)
			},
			screen: testScreening(20, nil),
			want:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := NewSelection(tt.screen, testGrid())
			tt.setup(selection)
			assert.InDelta(t, tt.want, selection.Total(), 1e-9)
		})
	}
}
