package booking

import (
	"cinema-client/internal/dto/response"
)

// Multiplier is the discount factor of a ticket type. Unknown types fall
// back to the normal price.
func Multiplier(ticketType response.TicketType) float64 {
	switch ticketType {
	case response.TicketTypeReduced:
		return 0.8
	case response.TicketTypeStudent:
		return 0.7
	default:
		return 1.0
	}
}

// UnitPrice of one seat for a screening: the VIP price applies only when
// the seat is VIP and the screening defines one
func UnitPrice(seat response.SeatAvailability, screening *response.Screening) float64 {
	if seat.SeatType == response.SeatTypeVIP && screening.VIPPrice != nil {
		return *screening.VIPPrice
	}
	return screening.BasePrice
}

// Line is one selected seat with its derived price
type Line struct {
	SeatID     int64
	RowNumber  int
	SeatNumber int
	SeatType   response.SeatType
	TicketType response.TicketType
	Price      float64
}

// Selection owns the selected-seats state of one reservation page: which
// seats are chosen and the ticket type per seat. Prices are derived, never
// stored; the total is advisory and the server's price stays authoritative.
type Selection struct {
	screening *response.Screening
	grid      *Grid

	order  []int64
	chosen map[int64]response.TicketType
}

func NewSelection(screening *response.Screening, grid *Grid) *Selection {
	return &Selection{
		screening: screening,
		grid:      grid,
		chosen:    make(map[int64]response.TicketType),
	}
}

func (s *Selection) Screening() *response.Screening {
	return s.screening
}

func (s *Selection) Grid() *Grid {
	return s.grid
}

// Toggle adds the seat with the NORMAL default type, or removes it when
// already selected. Seats that are reserved or disabled are refused.
// Returns whether the seat is selected afterwards.
func (s *Selection) Toggle(seatID int64) bool {
	if _, ok := s.chosen[seatID]; ok {
		s.Remove(seatID)
		return false
	}
	if !s.grid.Selectable(seatID) {
		return false
	}
	s.chosen[seatID] = response.TicketTypeNormal
	s.order = append(s.order, seatID)
	return true
}

// SetTicketType updates the type of an already selected seat; a seat not in
// the selection or an unknown type is a no-op
func (s *Selection) SetTicketType(seatID int64, ticketType response.TicketType) {
	if !ticketType.Valid() {
		return
	}
	if _, ok := s.chosen[seatID]; !ok {
		return
	}
	s.chosen[seatID] = ticketType
}

// Remove drops a seat from the selection; unknown seats are ignored
func (s *Selection) Remove(seatID int64) {
	if _, ok := s.chosen[seatID]; !ok {
		return
	}
	delete(s.chosen, seatID)
	for i, id := range s.order {
		if id == seatID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the seat is currently selected
func (s *Selection) Contains(seatID int64) bool {
	_, ok := s.chosen[seatID]
	return ok
}

func (s *Selection) Count() int {
	return len(s.chosen)
}

func (s *Selection) Empty() bool {
	return len(s.chosen) == 0
}

// Items lists the selected seats in selection order with derived prices
func (s *Selection) Items() []Line {
	lines := make([]Line, 0, len(s.order))
	for _, seatID := range s.order {
		ticketType, ok := s.chosen[seatID]
		if !ok {
			continue
		}
		seat, ok := s.grid.Seat(seatID)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			SeatID:     seat.SeatID,
			RowNumber:  seat.RowNumber,
			SeatNumber: seat.SeatNumber,
			SeatType:   seat.SeatType,
			TicketType: ticketType,
			Price:      UnitPrice(seat, s.screening) * Multiplier(ticketType),
		})
	}
	return lines
}

// Total sums the derived per-seat prices. Display-only: the authoritative
// total comes back with the created reservation.
func (s *Selection) Total() float64 {
	total := 0.0
	for _, line := range s.Items() {
		total += line.Price
	}
	return total
}
