package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/models"
)

// ListTeams shows the teams of a league. An empty input falls back to the
// configured default league.
func (a *App) ListTeams(ctx context.Context) error {
	prompt := fmt.Sprintf("Enter league (empty for %q)", a.config.DefaultLeague)
	league, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if league == "" {
		league = a.config.DefaultLeague
	}

	teams, err := a.sports.ListLeagueTeams(ctx, league)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	a.printTeams(teams)
	return nil
}

// SearchTeams looks up teams by name.
func (a *App) SearchTeams(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter team name", os.Stdout)
	if err != nil {
		return err
	}

	teams, err := a.sports.SearchTeams(ctx, name)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	a.printTeams(teams)
	return nil
}

// ShowTeam prints the full profile of a single team.
func (a *App) ShowTeam(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter team id", os.Stdout)
	if err != nil {
		return err
	}

	team, err := a.sports.LookupTeam(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	if team == nil {
		fmt.Println("Team not found.")
		return nil
	}

	fmt.Printf("%s (%s)\n", team.Name, team.ID)
	fmt.Printf("  League:  %s\n", team.League)
	fmt.Printf("  Sport:   %s\n", team.Sport)
	fmt.Printf("  Formed:  %s\n", team.FormedYear)
	fmt.Printf("  Stadium: %s (%s)\n", team.Stadium, team.StadiumLocation)
	if team.Manager != "" {
		fmt.Printf("  Manager: %s\n", team.Manager)
	}
	return nil
}

// ListEvents shows recent events of a team.
func (a *App) ListEvents(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter team name", os.Stdout)
	if err != nil {
		return err
	}

	evs, err := a.sports.SearchTeamEvents(ctx, name)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	if len(evs) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	favs := a.store.State().Favourites
	for _, e := range evs {
		fmt.Printf("%s [%s] %s  %s %s-%s %s\n",
			marker(favs.Contains(models.KindEvent, e.ID)),
			e.ID, e.Date, e.HomeTeam, e.HomeScore, e.AwayScore, e.AwayTeam)
	}
	return nil
}

// ShowEvent prints a single event.
func (a *App) ShowEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}

	ev, err := a.sports.LookupEvent(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	if ev == nil {
		fmt.Println("Event not found.")
		return nil
	}

	fmt.Printf("%s (%s)\n", ev.Name, ev.ID)
	fmt.Printf("  League: %s, season %s\n", ev.League, ev.Season)
	fmt.Printf("  Date:   %s %s\n", ev.Date, ev.Time)
	fmt.Printf("  Score:  %s %s - %s %s\n", ev.HomeTeam, ev.HomeScore, ev.AwayScore, ev.AwayTeam)
	if ev.Venue != "" {
		fmt.Printf("  Venue:  %s\n", ev.Venue)
	}
	return nil
}

// ListPlayers shows the squad of a team.
func (a *App) ListPlayers(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter team name", os.Stdout)
	if err != nil {
		return err
	}

	players, err := a.sports.SearchTeamPlayers(ctx, name)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	if len(players) == 0 {
		fmt.Println("No players found.")
		return nil
	}

	favs := a.store.State().Favourites
	for _, p := range players {
		fmt.Printf("%s [%s] %s (%s)\n",
			marker(favs.Contains(models.KindPlayer, p.ID)), p.ID, p.Name, p.Position)
	}
	return nil
}

// ShowPlayer prints a single player.
func (a *App) ShowPlayer(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter player id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.sports.LookupPlayer(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	if p == nil {
		fmt.Println("Player not found.")
		return nil
	}

	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("  Position:    %s\n", p.Position)
	fmt.Printf("  Nationality: %s\n", p.Nationality)
	fmt.Printf("  Born:        %s\n", p.BornDate)
	return nil
}

func (a *App) printTeams(teams []models.Team) {
	if len(teams) == 0 {
		fmt.Println("No teams found.")
		return
	}
	favs := a.store.State().Favourites
	for _, t := range teams {
		fmt.Printf("%s [%s] %s (%s)\n",
			marker(favs.Contains(models.KindTeam, t.ID)), t.ID, t.Name, t.League)
	}
}

// reportAPIError tells the user about connectivity problems and swallows the
// error so the REPL keeps running; anything else is returned.
func (a *App) reportAPIError(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnavailable) {
		fmt.Println("Sports catalog unavailable, try again later.")
		return nil
	}
	a.log.Error(ctx, "sports catalog request failed", "error", err)
	return err
}

func marker(fav bool) string {
	if fav {
		return "*"
	}
	return " "
}
