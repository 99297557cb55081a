package cmd

import (
	"context"
	"flag"
	"fmt"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/view"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"
)

func runRooms(ctx context.Context, app *wire.App) error {
	rooms, err := app.API.Rooms.List(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.RoomTable(rooms))
	return nil
}

func runRoom(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "room")
	if err != nil {
		return err
	}

	room, err := app.API.Rooms.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Printf("Room %s (#%d): %d rows x %d seats", room.RoomNumber, room.ID, room.TotalRows, room.SeatsPerRow)
	if room.Description != "" {
		fmt.Printf(" - %s", room.Description)
	}
	fmt.Println()

	seats, err := app.API.Rooms.Seats(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	vip, disabled := 0, 0
	for _, seat := range seats {
		if seat.SeatType == "VIP" {
			vip++
		}
		if !seat.IsAvailable {
			disabled++
		}
	}
	fmt.Printf("Seats: %d total, %d VIP, %d disabled\n", len(seats), vip, disabled)
	return nil
}

// ==================== ADMIN METHODS ====================

func roomRequestFlags(flags *flag.FlagSet) *request.CreateRoomRequest {
	req := &request.CreateRoomRequest{}
	flags.StringVar(&req.RoomNumber, "number", "", "room number")
	flags.IntVar(&req.TotalRows, "rows", 0, "number of rows")
	flags.IntVar(&req.SeatsPerRow, "seats", 0, "seats per row")
	flags.StringVar(&req.Description, "desc", "", "description (optional)")
	return req
}

func runRoomAdd(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("room-add", flag.ContinueOnError)
	req := roomRequestFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := app.API.Rooms.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Room %s created (#%d).\n", room.RoomNumber, room.ID)
	return nil
}

func runRoomUpdate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "room")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("room-update", flag.ContinueOnError)
	req := roomRequestFlags(flags)
	if err := flags.Parse(rest); err != nil {
		return err
	}

	update := request.UpdateRoomRequest(*req)
	if errs := utils.ValidateStruct(&update); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := app.API.Rooms.Update(ctx, id, &update)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Room %s updated.\n", room.RoomNumber)
	return nil
}

func runRoomDelete(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "room")
	if err != nil {
		return err
	}
	if err := app.API.Rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Room #%d deleted.\n", id)
	return nil
}

func runRoomDuplicate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "room")
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("new room number is required")
	}

	req := &request.DuplicateRoomRequest{NewRoomNumber: rest[0]}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := app.API.Rooms.Duplicate(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Room %s created as a copy of #%d.\n", room.RoomNumber, id)
	return nil
}

func runRoomsBulk(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("rooms-bulk", flag.ContinueOnError)
	req := &request.BulkRoomsRequest{}
	flags.StringVar(&req.RoomNumberPrefix, "prefix", "", "room number prefix")
	flags.IntVar(&req.StartNumber, "start", 1, "first room number")
	flags.IntVar(&req.Count, "count", 0, "number of rooms")
	flags.IntVar(&req.TotalRows, "rows", 0, "number of rows")
	flags.IntVar(&req.SeatsPerRow, "seats", 0, "seats per row")
	flags.StringVar(&req.Description, "desc", "", "description (optional)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rooms, err := app.API.Rooms.CreateBulk(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Created %d rooms.\n", len(rooms))
	fmt.Print(view.RoomTable(rooms))
	return nil
}
