package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	ListTeams(ctx context.Context) error
	SearchTeams(ctx context.Context) error
	ShowTeam(ctx context.Context) error
	ListEvents(ctx context.Context) error
	ShowEvent(ctx context.Context) error
	ListPlayers(ctx context.Context) error
	ShowPlayer(ctx context.Context) error
	ToggleFavourite(ctx context.Context) error
	ListFavourites(ctx context.Context) error
	ClearFavourites(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SportsLink CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create a local account
//	  - login          — authenticate
//	  - theme          — toggle light/dark theme
//	  - teams, search, team, events, event, players, player — browse the catalog
//	  - fav, favs, clearfavs — manage favourites
//	  - exit | quit    — leave the program
//
//	Logged in adds:
//	  - logout         — end the session
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sl> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: teams, search, team, events, event, players, player, fav, favs, clearfavs, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, teams, search, team, events, event, players, player, fav, favs, clearfavs, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "teams":
			_ = a.ListTeams(ctx)

		case "search":
			_ = a.SearchTeams(ctx)

		case "team":
			_ = a.ShowTeam(ctx)

		case "events":
			_ = a.ListEvents(ctx)

		case "event":
			_ = a.ShowEvent(ctx)

		case "players":
			_ = a.ListPlayers(ctx)

		case "player":
			_ = a.ShowPlayer(ctx)

		case "fav":
			_ = a.ToggleFavourite(ctx)

		case "favs":
			_ = a.ListFavourites(ctx)

		case "clearfavs":
			_ = a.ClearFavourites(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
