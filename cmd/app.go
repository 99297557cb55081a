package cmd

import (
	"context"
	"fmt"
	"os"

	"cinema-client/internal/api"
	"cinema-client/internal/wire"
)

const usage = `Usage: cinema-client <command> [flags]

Account:
  register, login, logout, whoami, passwd

Browse:
  movies, movie, popular, latest, reviews, review, rate
  repertoire, screenings, screening

Booking:
  reserve        interactive seat selection for a screening
  pay            pay for a reservation
  reservations   list your reservations
  cancel         cancel a reservation
  ticket         download the QR ticket

Admin:
  rooms, room, room-add, room-update, room-del, room-dup, rooms-bulk
  movie-add, movie-update, movie-del
  screening-add, screening-update, screening-del
  schedules, schedule-add, schedule-update, schedule-del, schedule-gen
  users, role, stats, audit
`

// Run dispatches one subcommand. Each command is a thin page over the API
// client and the views.
func Run(app *wire.App, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	switch command {
	// Account
	case "register":
		return runRegister(ctx, app, rest)
	case "login":
		return runLogin(ctx, app, rest)
	case "logout":
		return runLogout(ctx, app)
	case "whoami":
		return runWhoami(ctx, app)
	case "passwd":
		return runChangePassword(ctx, app, rest)

	// Browse
	case "movies":
		return runMovies(ctx, app, rest)
	case "movie":
		return runMovie(ctx, app, rest)
	case "popular":
		return runPopular(ctx, app, rest)
	case "latest":
		return runLatest(ctx, app, rest)
	case "reviews":
		return runReviews(ctx, app, rest)
	case "review":
		return runReview(ctx, app, rest)
	case "rate":
		return runRate(ctx, app, rest)
	case "repertoire":
		return runRepertoire(ctx, app, rest)
	case "screenings":
		return runScreenings(ctx, app, rest)
	case "screening":
		return runScreening(ctx, app, rest)

	// Booking
	case "reserve":
		return runReserve(ctx, app, rest)
	case "pay":
		return runPay(ctx, app, rest)
	case "reservations":
		return runReservations(ctx, app)
	case "cancel":
		return runCancelReservation(ctx, app, rest)
	case "ticket":
		return runTicket(ctx, app, rest)

	// Admin
	case "rooms":
		return runRooms(ctx, app)
	case "room":
		return runRoom(ctx, app, rest)
	case "room-add":
		return runRoomAdd(ctx, app, rest)
	case "room-update":
		return runRoomUpdate(ctx, app, rest)
	case "room-del":
		return runRoomDelete(ctx, app, rest)
	case "room-dup":
		return runRoomDuplicate(ctx, app, rest)
	case "rooms-bulk":
		return runRoomsBulk(ctx, app, rest)
	case "movie-add":
		return runMovieAdd(ctx, app, rest)
	case "movie-update":
		return runMovieUpdate(ctx, app, rest)
	case "movie-del":
		return runMovieDelete(ctx, app, rest)
	case "screening-add":
		return runScreeningAdd(ctx, app, rest)
	case "screening-update":
		return runScreeningUpdate(ctx, app, rest)
	case "screening-del":
		return runScreeningDelete(ctx, app, rest)
	case "schedules":
		return runSchedules(ctx, app)
	case "schedule-add":
		return runScheduleAdd(ctx, app, rest)
	case "schedule-update":
		return runScheduleUpdate(ctx, app, rest)
	case "schedule-del":
		return runScheduleDelete(ctx, app, rest)
	case "schedule-gen":
		return runScheduleGenerate(ctx, app, rest)
	case "users":
		return runUsers(ctx, app)
	case "role":
		return runChangeRole(ctx, app, rest)
	case "stats":
		return runStatistics(ctx, app)
	case "audit":
		return runAuditLogs(ctx, app, rest)

	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// describe maps the API failure taxonomy to a user-facing message. The
// server's own message stays verbatim, only the hint differs per class.
func describe(err error) string {
	switch {
	case api.IsUnauthorized(err):
		return "You are not logged in. Run 'cinema-client login' first."
	case api.IsConflict(err):
		return err.Error() + " (someone may have gotten there first; reload and retry)"
	default:
		return err.Error()
	}
}
