package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/common"
	"github.com/JehanPinto/SportsLink/internal/events"
	"github.com/JehanPinto/SportsLink/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's details and creates it in the local
// account store.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Duplicate usernames and emails are
// reported to the user; other errors are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}

	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Register(ctx, services.RegisterInput{
		Username:  username,
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUsername):
			fmt.Println("That username is already taken.")
			return nil
		case errors.Is(err, services.ErrDuplicateEmail):
			fmt.Println("That email is already registered.")
			return nil
		}
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// The auth service checks the local account store first and only then the
// remote credential service, so a locally registered user can log in without
// connectivity. On success the session event is dispatched (which persists
// the token, the user snapshot and a fresh expiry instant as one unit) and
// the expiry watcher is started. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	result, err := a.authService.Login(ctx, username, string(password))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			fmt.Println("Invalid username or password.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Server unavailable, try again later.")
		default:
			a.log.Error(ctx, "login failed", "error", err)
			fmt.Println("Login failed.")
		}
		return nil
	}

	a.store.Dispatch(events.CredentialsSet{Token: result.Token, User: result.User})
	a.startExpiryWatcher(ctx)

	fmt.Printf("Welcome, %s!\n", result.User.Username)
	return nil
}

// Logout ends the session. The dispatched event clears the persisted token,
// user snapshot and expiry together; favourites and theme survive.
func (a *App) Logout(ctx context.Context) error {
	a.stopExpiryWatcher()
	a.store.Dispatch(events.LoggedOut{})
	fmt.Println("Logged out.")
	return nil
}
