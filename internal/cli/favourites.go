package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/JehanPinto/SportsLink/internal/events"
	"github.com/JehanPinto/SportsLink/internal/models"
)

// ToggleFavourite adds an entity to the favourites of its kind, or removes
// it when already present. The change is visible immediately; persistence
// happens in the background.
func (a *App) ToggleFavourite(ctx context.Context) error {
	kind, err := a.promptKind()
	if err != nil {
		return err
	}
	if kind == "" {
		return nil
	}

	id, err := getSimpleText(a.reader, fmt.Sprintf("Enter %s id", kind), os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Println("No id given.")
		return nil
	}

	a.store.Dispatch(events.FavouriteToggled{Kind: kind, ID: id})

	favs := a.store.State().Favourites
	if favs.Contains(kind, id) {
		fmt.Printf("Added %s %s to favourites.\n", kind, id)
	} else {
		fmt.Printf("Removed %s %s from favourites.\n", kind, id)
	}
	return nil
}

// ListFavourites prints all three favourite collections in the order the
// entries were added. Team ids are resolved to names via the catalog; when
// the catalog is unreachable the raw ids are shown instead.
func (a *App) ListFavourites(ctx context.Context) error {
	favs := a.store.State().Favourites

	if len(favs.TeamIDs) == 0 && len(favs.EventIDs) == 0 && len(favs.PlayerIDs) == 0 {
		fmt.Println("No favourites yet.")
		return nil
	}

	if len(favs.TeamIDs) > 0 {
		fmt.Println("Teams:")
		teams, err := a.sports.ResolveFavouriteTeams(ctx, favs.TeamIDs)
		if err != nil {
			a.log.Warn(ctx, "could not resolve favourite teams", "error", err)
			for _, id := range favs.TeamIDs {
				fmt.Printf("  [%s]\n", id)
			}
		} else {
			for _, t := range teams {
				fmt.Printf("  [%s] %s (%s)\n", t.ID, t.Name, t.League)
			}
		}
	}

	if len(favs.EventIDs) > 0 {
		fmt.Println("Events:")
		for _, id := range favs.EventIDs {
			fmt.Printf("  [%s]\n", id)
		}
	}

	if len(favs.PlayerIDs) > 0 {
		fmt.Println("Players:")
		for _, id := range favs.PlayerIDs {
			fmt.Printf("  [%s]\n", id)
		}
	}
	return nil
}

// ClearFavourites empties one favourites collection, or all three.
func (a *App) ClearFavourites(ctx context.Context) error {
	choice, err := getSimpleText(a.reader, "Clear which favourites? (team/event/player/all)", os.Stdout)
	if err != nil {
		return err
	}

	switch choice {
	case "team", "event", "player":
		a.store.Dispatch(events.FavouritesCleared{Kind: models.EntityKind(choice)})
		fmt.Printf("Cleared %s favourites.\n", choice)
	case "all":
		a.store.Dispatch(events.AllFavouritesCleared{})
		fmt.Println("Cleared all favourites.")
	default:
		fmt.Println("Unknown choice:", choice)
	}
	return nil
}

// ToggleTheme flips between the light and dark theme.
func (a *App) ToggleTheme(ctx context.Context) error {
	next := a.store.State().Theme.Toggled()
	a.store.Dispatch(events.ThemeSet{Theme: next})
	fmt.Printf("Theme set to %s.\n", next)
	return nil
}

func (a *App) promptKind() (models.EntityKind, error) {
	choice, err := getSimpleText(a.reader, "Favourite what? (team/event/player)", os.Stdout)
	if err != nil {
		return "", err
	}
	switch choice {
	case "team":
		return models.KindTeam, nil
	case "event":
		return models.KindEvent, nil
	case "player":
		return models.KindPlayer, nil
	}
	fmt.Println("Unknown choice:", choice)
	return "", nil
}
