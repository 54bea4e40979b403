// Package accounts implements the local account table: credentials
// registered on this device, used before falling back to the remote auth
// endpoint. Usernames and emails are unique; passwords are stored as bcrypt
// hashes, never in the clear.
package accounts

import (
	"context"
	"errors"

	"github.com/JehanPinto/SportsLink/internal/models"
)

// ErrNotFound is returned when no account matches a lookup.
var ErrNotFound = errors.New("account not found")

// Account is a locally-registered credential record.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Gender       string
	Image        string
}

// User returns the profile snapshot for this account, in the same shape a
// remote login produces.
func (a *Account) User() models.User {
	return models.User{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Gender:    a.Gender,
		Image:     a.Image,
	}
}

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByUsername(ctx context.Context, username string) (*Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
