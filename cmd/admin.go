package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"cinema-client/internal/dto/response"
	"cinema-client/internal/view"
	"cinema-client/internal/wire"
)

func runUsers(ctx context.Context, app *wire.App) error {
	users, err := app.API.Admin.Users(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.UserTable(users))
	return nil
}

func runChangeRole(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "user")
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("role is required (USER or ADMIN)")
	}

	role := response.UserRole(strings.ToUpper(rest[0]))
	if role != response.UserRoleUser && role != response.UserRoleAdmin {
		return fmt.Errorf("invalid role %q (USER or ADMIN)", rest[0])
	}

	user, err := app.API.Admin.ChangeUserRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("User %s is now %s.\n", user.Username, user.Role)
	return nil
}

func runStatistics(ctx context.Context, app *wire.App) error {
	stats, err := app.API.Admin.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.StatisticsReport(stats))
	return nil
}

func runAuditLogs(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("audit", flag.ContinueOnError)
	page := flags.Int("page", 0, "page number (zero-based)")
	size := flags.Int("size", 50, "page size")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logs, err := app.API.Admin.AuditLogs(ctx, *page, *size)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.AuditLogTable(logs))
	return nil
}
