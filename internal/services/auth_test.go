package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/logging"
	"github.com/JehanPinto/SportsLink/internal/repositories/accounts"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupRepo(t *testing.T) accounts.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE accounts (
  id            TEXT PRIMARY KEY,
  username      TEXT NOT NULL UNIQUE,
  email         TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name    TEXT NOT NULL DEFAULT '',
  last_name     TEXT NOT NULL DEFAULT '',
  gender        TEXT NOT NULL DEFAULT '',
  image         TEXT NOT NULL DEFAULT ''
);`)
	require.NoError(t, err)
	return accounts.NewSQLiteRepository(db)
}

// fakeAuthClient implements api.AuthClient and records whether the network
// was touched.
type fakeAuthClient struct {
	LoginRet *api.LoginResponse
	LoginErr error

	Calls        int
	LastUsername string
	LastPassword string
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	f.Calls++
	f.LastUsername = username
	f.LastPassword = password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginRet, nil
}

func newService(t *testing.T, repo accounts.Repository, remote api.AuthClient) AuthService {
	t.Helper()
	log := logging.NewZerologLogger(zerolog.Nop())
	return NewAuthService(repo, remote, []byte("test-secret"), time.Hour, log)
}

func registerAlice(t *testing.T, svc AuthService) *accounts.Account {
	t.Helper()
	acc, err := svc.Register(context.Background(), RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "pw1",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)
	return acc
}

// ---- registration ----

func TestRegister_HashesPasswordAndAssignsID(t *testing.T) {
	repo := setupRepo(t)
	svc := newService(t, repo, &fakeAuthClient{})

	acc := registerAlice(t, svc)

	assert.NotEmpty(t, acc.ID)
	assert.NotEqual(t, "pw1", acc.PasswordHash, "password must never be stored in the clear")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("pw1")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := setupRepo(t)
	svc := newService(t, repo, &fakeAuthClient{})
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw2",
	})
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := setupRepo(t)
	svc := newService(t, repo, &fakeAuthClient{})
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw2",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_CollisionOnBoth_UsernameErrorWins(t *testing.T) {
	repo := setupRepo(t)
	svc := newService(t, repo, &fakeAuthClient{})
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw2",
	})
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUsernameAndEmailTaken(t *testing.T) {
	repo := setupRepo(t)
	svc := newService(t, repo, &fakeAuthClient{})
	registerAlice(t, svc)
	ctx := context.Background()

	taken, err := svc.UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.EmailTaken(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

// ---- login ----

func TestLogin_LocalAccount_NoNetworkCall(t *testing.T) {
	repo := setupRepo(t)
	remote := &fakeAuthClient{LoginErr: api.ErrUnavailable}
	svc := newService(t, repo, remote)
	registerAlice(t, svc)

	result, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	assert.Zero(t, remote.Calls, "local match must not touch the network")
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, 3, len(strings.Split(result.Token, ".")), "local token should be a signed JWT")
}

func TestLogin_LocalWrongPassword_FallsBackToRemote(t *testing.T) {
	repo := setupRepo(t)
	remote := &fakeAuthClient{LoginErr: api.ErrUnauthorized}
	svc := newService(t, repo, remote)
	registerAlice(t, svc)

	_, err := svc.Login(context.Background(), "alice", "not-pw1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, remote.Calls)
}

func TestLogin_RemoteSuccess(t *testing.T) {
	repo := setupRepo(t)
	remote := &fakeAuthClient{
		LoginRet: &api.LoginResponse{
			ID:          json.Number("15"),
			Username:    "emilys",
			Email:       "emily.johnson@x.dummyjson.com",
			FirstName:   "Emily",
			LastName:    "Johnson",
			AccessToken: "remote-token",
		},
	}
	svc := newService(t, repo, remote)

	result, err := svc.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)

	assert.Equal(t, "remote-token", result.Token)
	assert.Equal(t, "15", result.User.ID)
	assert.Equal(t, "emilys", remote.LastUsername)
	assert.Equal(t, "emilyspass", remote.LastPassword)
}

func TestLogin_RemoteRejected(t *testing.T) {
	repo := setupRepo(t)
	remote := &fakeAuthClient{LoginErr: api.ErrUnauthorized}
	svc := newService(t, repo, remote)

	_, err := svc.Login(context.Background(), "nobody", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RemoteUnavailable_SurfacesError(t *testing.T) {
	repo := setupRepo(t)
	remote := &fakeAuthClient{LoginErr: api.ErrUnavailable}
	svc := newService(t, repo, remote)

	_, err := svc.Login(context.Background(), "nobody", "pw")
	require.ErrorIs(t, err, api.ErrUnavailable)
}
