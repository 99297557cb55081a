package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"cinema-client/internal/booking"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
	"cinema-client/internal/view"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"
)

const reserveHelp = `Commands:
  toggle <row> <seat>        select or deselect a seat
  type <row> <seat> <type>   set ticket type (NORMAL, REDUCED, STUDENT)
  remove <row> <seat>        drop a seat from the selection
  total                      show the current selection and price
  submit                     send the reservation
  quit                       abandon the selection`

// runReserve drives the seat-picking loop for a screening: render the
// grid, mutate the selection from stdin commands, submit at the end.
func runReserve(ctx context.Context, app *wire.App, args []string) error {
	screeningID, _, err := parseID(args, "screening")
	if err != nil {
		return err
	}

	screening, err := app.API.Screenings.Get(ctx, screeningID)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	seats, err := app.API.Reservations.SeatsForScreening(ctx, screeningID)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	grid := booking.BuildGrid(seats)
	selection := booking.NewSelection(screening, grid)

	fmt.Printf("%s - Room %s, %s\n\n", screening.MovieTitle, screening.RoomNumber, screening.StartTime.Display())
	fmt.Print(view.RenderGrid(grid, selection))
	fmt.Println(reserveHelp)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "toggle":
			seat, ok := seatArg(grid, fields[1:])
			if !ok {
				fmt.Println("usage: toggle <row> <seat>")
				continue
			}
			wasSelected := selection.Contains(seat.SeatID)
			if !selection.Toggle(seat.SeatID) && !wasSelected {
				fmt.Println("That seat cannot be selected.")
				continue
			}
			fmt.Print(view.RenderGrid(grid, selection))
		case "type":
			seat, ok := seatArg(grid, fields[1:])
			if !ok || len(fields) < 4 {
				fmt.Println("usage: type <row> <seat> <NORMAL|REDUCED|STUDENT>")
				continue
			}
			ticketType := response.TicketType(strings.ToUpper(fields[3]))
			if !ticketType.Valid() {
				fmt.Println("Ticket type must be NORMAL, REDUCED or STUDENT.")
				continue
			}
			selection.SetTicketType(seat.SeatID, ticketType)
			fmt.Print(view.RenderSelection(selection))
		case "remove":
			seat, ok := seatArg(grid, fields[1:])
			if !ok {
				fmt.Println("usage: remove <row> <seat>")
				continue
			}
			selection.Remove(seat.SeatID)
			fmt.Print(view.RenderGrid(grid, selection))
		case "total":
			fmt.Print(view.RenderSelection(selection))
		case "submit":
			reservation, err := app.Flow.Submit(ctx, selection)
			if err != nil {
				fmt.Println(describe(err))
				continue
			}
			fmt.Printf("Reservation #%d created, total %.2f.\n", reservation.ID, reservation.TotalPrice)
			fmt.Printf("Pay with: cinema-client pay %d -method BLIK -blik <code>\n", reservation.ID)
			return nil
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(reserveHelp)
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

func seatArg(grid *booking.Grid, args []string) (response.SeatAvailability, bool) {
	if len(args) < 2 {
		return response.SeatAvailability{}, false
	}
	row := utils.ParseInt(args[0], 0)
	number := utils.ParseInt(args[1], 0)
	if row == 0 || number == 0 {
		return response.SeatAvailability{}, false
	}
	seat, ok := grid.SeatAt(row, number)
	if !ok {
		fmt.Printf("No seat %d in row %d.\n", number, row)
	}
	return seat, ok
}

func runPay(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "reservation")
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("pay", flag.ContinueOnError)
	req := &request.ProcessPaymentRequest{ReservationID: id}
	flags.StringVar(&req.PaymentMethod, "method", "BLIK", "payment method")
	flags.StringVar(&req.CardNumber, "card", "", "card number (card payments)")
	flags.StringVar(&req.ExpiryDate, "expiry", "", "card expiry, MM/YY")
	flags.StringVar(&req.CVV, "cvv", "", "card CVV")
	flags.StringVar(&req.BlikCode, "blik", "", "6-digit BLIK code")
	flags.StringVar(&req.PaypalEmail, "paypal", "", "PayPal account email")
	if err := flags.Parse(rest); err != nil {
		return err
	}
	req.PaymentMethod = strings.ToUpper(req.PaymentMethod)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	result, err := app.API.Payments.Process(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.PaymentSummary(result))
	return nil
}

func runReservations(ctx context.Context, app *wire.App) error {
	reservations, err := app.API.Reservations.My(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.ReservationList(reservations))
	return nil
}

func runCancelReservation(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "reservation")
	if err != nil {
		return err
	}
	if err := app.API.Reservations.Cancel(ctx, id); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Reservation #%d cancelled.\n", id)
	return nil
}

func runTicket(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "reservation")
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("ticket", flag.ContinueOnError)
	out := flags.String("out", "", "output file (default ticket-<id>.png)")
	if err := flags.Parse(rest); err != nil {
		return err
	}
	if *out == "" {
		*out = fmt.Sprintf("ticket-%d.png", id)
	}

	png, err := app.API.Tickets.QRCode(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("write ticket: %w", err)
	}
	fmt.Printf("Ticket QR code saved to %s.\n", *out)
	return nil
}
