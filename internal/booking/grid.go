package booking

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"cinema-client/internal/dto/response"
)

// SeatState is the display state of one seat in the grid. Precedence is
// strict: disabled beats reserved beats available.
type SeatState string

const (
	SeatStateDisabled  SeatState = "disabled"
	SeatStateReserved  SeatState = "reserved"
	SeatStateVIP       SeatState = "vip"
	SeatStateAvailable SeatState = "available"
)

type GridSeat struct {
	SeatID     int64
	RowNumber  int
	SeatNumber int
	SeatType   response.SeatType
	State      SeatState
}

type GridRow struct {
	Number int
	Seats  []GridSeat
}

// Grid is the room layout for one screening: rows ascending, seats within a
// row ascending. Only seats in the selectable set may enter a selection, so
// disabled and reserved seats never get an interaction attached.
type Grid struct {
	Rows []GridRow

	selectable mapset.Set[int64]
	seats      map[int64]response.SeatAvailability
}

func stateOf(seat response.SeatAvailability) SeatState {
	switch {
	case !seat.IsSeatEnabled:
		return SeatStateDisabled
	case !seat.IsAvailable:
		return SeatStateReserved
	case seat.SeatType == response.SeatTypeVIP:
		return SeatStateVIP
	default:
		return SeatStateAvailable
	}
}

// BuildGrid groups the availability snapshot by row. An empty snapshot
// yields an empty grid.
func BuildGrid(seats []response.SeatAvailability) *Grid {
	grid := &Grid{
		selectable: mapset.NewSet[int64](),
		seats:      make(map[int64]response.SeatAvailability, len(seats)),
	}

	byRow := make(map[int][]response.SeatAvailability)
	for _, seat := range seats {
		byRow[seat.RowNumber] = append(byRow[seat.RowNumber], seat)
		grid.seats[seat.SeatID] = seat
		if seat.Selectable() {
			grid.selectable.Add(seat.SeatID)
		}
	}

	rowNumbers := make([]int, 0, len(byRow))
	for row := range byRow {
		rowNumbers = append(rowNumbers, row)
	}
	sort.Ints(rowNumbers)

	for _, rowNumber := range rowNumbers {
		rowSeats := byRow[rowNumber]
		sort.Slice(rowSeats, func(i, j int) bool {
			return rowSeats[i].SeatNumber < rowSeats[j].SeatNumber
		})

		row := GridRow{Number: rowNumber, Seats: make([]GridSeat, 0, len(rowSeats))}
		for _, seat := range rowSeats {
			row.Seats = append(row.Seats, GridSeat{
				SeatID:     seat.SeatID,
				RowNumber:  seat.RowNumber,
				SeatNumber: seat.SeatNumber,
				SeatType:   seat.SeatType,
				State:      stateOf(seat),
			})
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// Selectable reports whether the seat is available and enabled
func (g *Grid) Selectable(seatID int64) bool {
	return g.selectable.Contains(seatID)
}

// Seat returns the snapshot record behind a seat ID
func (g *Grid) Seat(seatID int64) (response.SeatAvailability, bool) {
	seat, ok := g.seats[seatID]
	return seat, ok
}

// SeatAt resolves a seat by its row and seat number, the way users refer to
// seats at the terminal
func (g *Grid) SeatAt(rowNumber, seatNumber int) (response.SeatAvailability, bool) {
	for _, seat := range g.seats {
		if seat.RowNumber == rowNumber && seat.SeatNumber == seatNumber {
			return seat, true
		}
	}
	return response.SeatAvailability{}, false
}
