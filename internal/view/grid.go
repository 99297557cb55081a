package view

import (
	"fmt"
	"strings"

	"cinema-client/internal/booking"
)

// RenderGrid draws the seat grid. The selection overlays the grid states;
// it never changes them, so reserved and disabled seats render the same
// whether or not a selection exists.
func RenderGrid(grid *booking.Grid, selection *booking.Selection) string {
	var b strings.Builder

	b.WriteString("              S C R E E N\n")
	b.WriteString("  ----------------------------------\n")

	if len(grid.Rows) == 0 {
		b.WriteString("  no seats\n")
		return b.String()
	}

	for _, row := range grid.Rows {
		fmt.Fprintf(&b, "  Row %2d: ", row.Number)
		for _, seat := range row.Seats {
			b.WriteString(renderSeat(seat, selection))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  Legend: [n] selected  n available  nV vip  xx reserved  -- out of service\n")
	return b.String()
}

func renderSeat(seat booking.GridSeat, selection *booking.Selection) string {
	if selection != nil && selection.Contains(seat.SeatID) {
		return fmt.Sprintf("[%2d] ", seat.SeatNumber)
	}

	switch seat.State {
	case booking.SeatStateDisabled:
		return " --  "
	case booking.SeatStateReserved:
		return " xx  "
	case booking.SeatStateVIP:
		return fmt.Sprintf("%3dV ", seat.SeatNumber)
	default:
		return fmt.Sprintf("%3d  ", seat.SeatNumber)
	}
}

// RenderSelection lists the chosen seats with per-seat prices and the
// advisory total
func RenderSelection(selection *booking.Selection) string {
	if selection == nil || selection.Empty() {
		return "  No seats selected.\n"
	}

	var b strings.Builder
	for _, line := range selection.Items() {
		badge := ""
		if line.SeatType == "VIP" {
			badge = " VIP"
		}
		fmt.Fprintf(&b, "  Row %d, Seat %d%s  %-8s %8.2f\n",
			line.RowNumber, line.SeatNumber, badge, strings.ToLower(string(line.TicketType)), line.Price)
	}
	fmt.Fprintf(&b, "  Total: %.2f (final price confirmed by the server)\n", selection.Total())
	return b.String()
}
