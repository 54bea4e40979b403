package services

import (
	"context"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/models"
)

// SportsService exposes the catalog queries the CLI needs, including
// resolving favourite ids back into full records.
type SportsService struct {
	client *api.SportsClient
}

func NewSportsService(client *api.SportsClient) *SportsService {
	return &SportsService{client: client}
}

func (s *SportsService) ListLeagueTeams(ctx context.Context, league string) ([]models.Team, error) {
	return s.client.ListLeagueTeams(ctx, league)
}

func (s *SportsService) SearchTeams(ctx context.Context, name string) ([]models.Team, error) {
	return s.client.SearchTeams(ctx, name)
}

func (s *SportsService) LookupTeam(ctx context.Context, id string) (*models.Team, error) {
	return s.client.LookupTeam(ctx, id)
}

func (s *SportsService) SearchTeamEvents(ctx context.Context, teamName string) ([]models.Event, error) {
	return s.client.SearchTeamEvents(ctx, teamName)
}

func (s *SportsService) LookupEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.client.LookupEvent(ctx, id)
}

func (s *SportsService) SearchTeamPlayers(ctx context.Context, teamName string) ([]models.Player, error) {
	return s.client.SearchTeamPlayers(ctx, teamName)
}

func (s *SportsService) LookupPlayer(ctx context.Context, id string) (*models.Player, error) {
	return s.client.LookupPlayer(ctx, id)
}

// ResolveFavouriteTeams looks up each favourite team id. Unknown ids are
// skipped rather than failing the whole list.
func (s *SportsService) ResolveFavouriteTeams(ctx context.Context, ids []string) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.client.LookupTeam(ctx, id)
		if err != nil {
			return nil, err
		}
		if team != nil {
			teams = append(teams, *team)
		}
	}
	return teams, nil
}
