package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"
)

func prompt(label string) string {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func runRegister(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	username := flags.String("user", "", "username")
	password := flags.String("pass", "", "password")
	firstName := flags.String("first", "", "first name")
	lastName := flags.String("last", "", "last name")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		*username = prompt("Username")
	}
	if *password == "" {
		*password = prompt("Password")
	}
	if *firstName == "" {
		*firstName = prompt("First name")
	}
	if *lastName == "" {
		*lastName = prompt("Last name")
	}

	req := &request.RegisterRequest{
		Username:  *username,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := app.API.Auth.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Printf("Registered %s. You can now log in.\n", user.Username)
	return nil
}

func runLogin(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	username := flags.String("user", "", "username")
	password := flags.String("pass", "", "password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		*username = prompt("Username")
	}
	if *password == "" {
		*password = prompt("Password")
	}

	req := &request.LoginRequest{Username: *username, Password: *password}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := app.API.Auth.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Printf("Logged in as %s %s (%s).\n", user.FirstName, user.LastName, user.Role)
	return nil
}

func runLogout(ctx context.Context, app *wire.App) error {
	if err := app.API.Auth.Logout(ctx); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(ctx context.Context, app *wire.App) error {
	user, err := app.API.Auth.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("%s (%s %s), role %s\n", user.Username, user.FirstName, user.LastName, user.Role)
	return nil
}

func runChangePassword(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("passwd", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	req := &request.ChangePasswordRequest{
		CurrentPassword: prompt("Current password"),
		NewPassword:     prompt("New password"),
		ConfirmPassword: prompt("Confirm new password"),
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := app.API.Profile.ChangePassword(ctx, req); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Println("Password changed.")
	return nil
}
