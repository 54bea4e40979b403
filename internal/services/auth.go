// Package services contains the application services the CLI talks to:
// authentication (local account store with remote fallback) and the sports
// catalog queries.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/logging"
	"github.com/JehanPinto/SportsLink/internal/models"
	"github.com/JehanPinto/SportsLink/internal/repositories/accounts"
)

var (
	// ErrDuplicateUsername rejects a registration whose username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail rejects a registration whose email is taken.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials means neither the local store nor the remote
	// endpoint accepted the username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// LoginResult is a fresh session: a bearer token plus the profile snapshot
// captured at login time.
type LoginResult struct {
	Token string
	User  models.User
}

// RegisterInput is a registration candidate. Password arrives in the clear
// and is hashed before anything is persisted.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
	Image     string
}

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: check the local account store first; only when no local
//     account matches both username and password is the remote endpoint
//     consulted. A local match never touches the network.
//   - Register: create a local account, rejecting duplicate usernames
//     (checked first) and emails.
//   - UsernameTaken / EmailTaken: pure membership checks.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*accounts.Account, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type authService struct {
	accounts accounts.Repository
	remote   api.AuthClient
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
}

// NewAuthService constructs an AuthService over the local account
// repository and the remote auth client. Locally minted tokens are signed
// with secret and live for tokenTTL.
func NewAuthService(repo accounts.Repository, remote api.AuthClient, secret []byte, tokenTTL time.Duration, log logging.Logger) AuthService {
	return &authService{
		accounts: repo,
		remote:   remote,
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil {
			token, err := GenerateToken(account.ID, s.secret, s.tokenTTL)
			if err != nil {
				return nil, fmt.Errorf("failed to mint local session token: %w", err)
			}
			return &LoginResult{Token: token, User: account.User()}, nil
		}
		// Wrong password for a local account still falls through: the same
		// username may exist remotely with different credentials.
	case errors.Is(err, accounts.ErrNotFound):
	default:
		s.log.Warn(ctx, "local account lookup failed, falling back to remote login", "error", err)
	}

	resp, err := s.remote.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return &LoginResult{Token: resp.AccessToken, User: resp.User()}, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*accounts.Account, error) {
	// Username collision wins the tie-break when a candidate collides on
	// both fields, so it is checked first.
	taken, err := s.accounts.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	taken, err = s.accounts.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &accounts.Account{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Gender:       input.Gender,
		Image:        input.Image,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *authService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.accounts.UsernameExists(ctx, username)
}

func (s *authService) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.accounts.EmailExists(ctx, email)
}
