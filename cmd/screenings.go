package cmd

import (
	"context"
	"flag"
	"fmt"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
	"cinema-client/internal/view"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"
)

func runScreenings(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("screenings", flag.ContinueOnError)
	page := flags.Int("page", 0, "page number (zero-based)")
	size := flags.Int("size", 20, "page size")
	movieID := flags.Int64("movie", 0, "filter by movie ID")
	from := flags.String("from", "", "range start (2006-01-02)")
	to := flags.String("to", "", "range end (2006-01-02)")
	all := flags.Bool("all", false, "include past screenings")
	if err := flags.Parse(args); err != nil {
		return err
	}

	query := request.PageQuery{Page: *page, Size: *size, Sort: "startTime,asc"}

	var (
		result *response.Page[response.Screening]
		err    error
	)
	switch {
	case *from != "" && *to != "":
		result, err = app.API.Screenings.Range(ctx, *from+"T00:00:00", *to+"T23:59:59", query)
	case *movieID > 0:
		result, err = app.API.Screenings.ByMovie(ctx, *movieID, query)
	case *all:
		result, err = app.API.Screenings.List(ctx, query)
	default:
		result, err = app.API.Screenings.Upcoming(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Print(view.ScreeningTable(result.Content))
	printPaging(result.Number, result.TotalPages)
	return nil
}

func printPaging(number, totalPages int) {
	if totalPages > 1 {
		fmt.Printf("Page %d of %d\n", number+1, totalPages)
	}
}

func runScreening(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "screening")
	if err != nil {
		return err
	}

	s, err := app.API.Screenings.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Printf("Screening #%d: %s\n", s.ID, s.MovieTitle)
	fmt.Printf("  Room %s, %s - %s\n", s.RoomNumber, s.StartTime.Display(), s.EndTime.Display())
	fmt.Printf("  Base price %.2f", s.BasePrice)
	if s.VIPPrice != nil {
		fmt.Printf(", VIP price %.2f", *s.VIPPrice)
	}
	fmt.Printf("\n  Seats available: %d/%d\n", s.AvailableSeats, s.TotalSeats)
	return nil
}

// ==================== ADMIN METHODS ====================

func screeningRequestFlags(flags *flag.FlagSet) (*request.CreateScreeningRequest, *float64) {
	req := &request.CreateScreeningRequest{}
	flags.Int64Var(&req.MovieID, "movie", 0, "movie ID")
	flags.Int64Var(&req.RoomID, "room", 0, "room ID")
	flags.StringVar(&req.StartTime, "start", "", "start time (2006-01-02T15:04:05)")
	flags.Float64Var(&req.BasePrice, "price", 0, "base price")
	vip := flags.Float64("vip", 0, "VIP price (optional)")
	return req, vip
}

func runScreeningAdd(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("screening-add", flag.ContinueOnError)
	req, vip := screeningRequestFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *vip > 0 {
		req.VIPPrice = vip
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s, err := app.API.Screenings.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Screening #%d created (%s, %s).\n", s.ID, s.MovieTitle, s.StartTime.Display())
	return nil
}

func runScreeningUpdate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "screening")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("screening-update", flag.ContinueOnError)
	req, vip := screeningRequestFlags(flags)
	if err := flags.Parse(rest); err != nil {
		return err
	}
	if *vip > 0 {
		req.VIPPrice = vip
	}

	update := request.UpdateScreeningRequest(*req)
	if errs := utils.ValidateStruct(&update); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s, err := app.API.Screenings.Update(ctx, id, &update)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Screening #%d updated.\n", s.ID)
	return nil
}

func runScreeningDelete(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "screening")
	if err != nil {
		return err
	}
	if err := app.API.Screenings.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Screening #%d deleted.\n", id)
	return nil
}

func runSchedules(ctx context.Context, app *wire.App) error {
	schedules, err := app.API.Schedules.List(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.ScheduleTable(schedules))
	return nil
}

func scheduleRequestFlags(flags *flag.FlagSet) (*request.CreateScheduleRequest, *float64) {
	req := &request.CreateScheduleRequest{}
	flags.Int64Var(&req.MovieID, "movie", 0, "movie ID")
	flags.Int64Var(&req.RoomID, "room", 0, "room ID")
	flags.StringVar(&req.DayOfWeek, "day", "", "day of week (MONDAY..SUNDAY)")
	flags.StringVar(&req.StartTime, "time", "", "start time (15:04)")
	flags.StringVar(&req.StartDate, "from", "", "first day (2006-01-02)")
	flags.StringVar(&req.EndDate, "to", "", "last day (2006-01-02)")
	flags.Float64Var(&req.BasePrice, "price", 0, "base price")
	vip := flags.Float64("vip", 0, "VIP price (optional)")
	return req, vip
}

func runScheduleAdd(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("schedule-add", flag.ContinueOnError)
	req, vip := scheduleRequestFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *vip > 0 {
		req.VIPPrice = vip
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s, err := app.API.Schedules.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Schedule #%d created (%s at %s).\n", s.ID, s.DayOfWeek, s.StartTime)
	return nil
}

func runScheduleUpdate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "schedule")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("schedule-update", flag.ContinueOnError)
	req, vip := scheduleRequestFlags(flags)
	if err := flags.Parse(rest); err != nil {
		return err
	}
	if *vip > 0 {
		req.VIPPrice = vip
	}

	update := request.UpdateScheduleRequest(*req)
	if errs := utils.ValidateStruct(&update); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s, err := app.API.Schedules.Update(ctx, id, &update)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Schedule #%d updated.\n", s.ID)
	return nil
}

func runScheduleDelete(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "schedule")
	if err != nil {
		return err
	}
	if err := app.API.Schedules.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Schedule #%d deleted.\n", id)
	return nil
}

func runScheduleGenerate(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "schedule")
	if err != nil {
		return err
	}
	screenings, err := app.API.Schedules.Generate(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Generated %d screenings from schedule #%d.\n", len(screenings), id)
	fmt.Print(view.ScreeningTable(screenings))
	return nil
}
