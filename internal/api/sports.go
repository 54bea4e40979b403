package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JehanPinto/SportsLink/internal/models"
)

// SportsClient reads the public sports data API: parameterized GET lookups
// returning JSON collections of teams, events and players. The API wraps
// every result in an envelope whose collection is null when nothing
// matched; these decode to empty slices here.
type SportsClient struct {
	baseURL string
	http    *http.Client
}

func NewSportsClient(baseURL string) *SportsClient {
	return &SportsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type teamsEnvelope struct {
	Teams []models.Team `json:"teams"`
}

type eventSearchEnvelope struct {
	Event []models.Event `json:"event"`
}

type eventLookupEnvelope struct {
	Events []models.Event `json:"events"`
}

type playerSearchEnvelope struct {
	Player []models.Player `json:"player"`
}

type playerLookupEnvelope struct {
	Players []models.Player `json:"players"`
}

// ListLeagueTeams returns all teams of the named league.
func (c *SportsClient) ListLeagueTeams(ctx context.Context, league string) ([]models.Team, error) {
	var env teamsEnvelope
	if err := c.get(ctx, "search_all_teams.php", url.Values{"l": {league}}, &env); err != nil {
		return nil, err
	}
	return env.Teams, nil
}

// SearchTeams looks up teams by name.
func (c *SportsClient) SearchTeams(ctx context.Context, name string) ([]models.Team, error) {
	var env teamsEnvelope
	if err := c.get(ctx, "searchteams.php", url.Values{"t": {name}}, &env); err != nil {
		return nil, err
	}
	return env.Teams, nil
}

// LookupTeam fetches one team by id; nil when the id is unknown.
func (c *SportsClient) LookupTeam(ctx context.Context, id string) (*models.Team, error) {
	var env teamsEnvelope
	if err := c.get(ctx, "lookupteam.php", url.Values{"id": {id}}, &env); err != nil {
		return nil, err
	}
	if len(env.Teams) == 0 {
		return nil, nil
	}
	return &env.Teams[0], nil
}

// SearchTeamEvents returns events involving the named team.
func (c *SportsClient) SearchTeamEvents(ctx context.Context, teamName string) ([]models.Event, error) {
	var env eventSearchEnvelope
	if err := c.get(ctx, "searchevents.php", url.Values{"e": {teamName}}, &env); err != nil {
		return nil, err
	}
	return env.Event, nil
}

// LookupEvent fetches one event by id; nil when the id is unknown.
func (c *SportsClient) LookupEvent(ctx context.Context, id string) (*models.Event, error) {
	var env eventLookupEnvelope
	if err := c.get(ctx, "lookupevent.php", url.Values{"id": {id}}, &env); err != nil {
		return nil, err
	}
	if len(env.Events) == 0 {
		return nil, nil
	}
	return &env.Events[0], nil
}

// SearchTeamPlayers returns the squad of the named team.
func (c *SportsClient) SearchTeamPlayers(ctx context.Context, teamName string) ([]models.Player, error) {
	var env playerSearchEnvelope
	if err := c.get(ctx, "searchplayers.php", url.Values{"t": {teamName}}, &env); err != nil {
		return nil, err
	}
	return env.Player, nil
}

// LookupPlayer fetches one player by id; nil when the id is unknown.
func (c *SportsClient) LookupPlayer(ctx context.Context, id string) (*models.Player, error) {
	var env playerLookupEnvelope
	if err := c.get(ctx, "lookupplayer.php", url.Values{"id": {id}}, &env); err != nil {
		return nil, err
	}
	if len(env.Players) == 0 {
		return nil, nil
	}
	return &env.Players[0], nil
}

func (c *SportsClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sports endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode sports response: %w", err)
	}
	return nil
}
