package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JehanPinto/SportsLink/internal/api"
)

func TestResolveFavouriteTeams_SkipsUnknownIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lookupteam.php", r.URL.Path)

		id := r.URL.Query().Get("id")
		if id == "404404" {
			fmt.Fprint(w, `{"teams":null}`)
			return
		}
		fmt.Fprintf(w, `{"teams":[{"idTeam":%q,"strTeam":"Team %s","strLeague":"English Premier League"}]}`, id, id)
	}))
	defer srv.Close()

	svc := NewSportsService(api.NewSportsClient(srv.URL))

	teams, err := svc.ResolveFavouriteTeams(context.Background(), []string{"133604", "404404", "133616"})
	require.NoError(t, err)

	require.Len(t, teams, 2)
	assert.Equal(t, "133604", teams[0].ID)
	assert.Equal(t, "133616", teams[1].ID)
}

func TestResolveFavouriteTeams_PropagatesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewSportsService(api.NewSportsClient(srv.URL))

	_, err := svc.ResolveFavouriteTeams(context.Background(), []string{"1"})
	require.Error(t, err)
}
