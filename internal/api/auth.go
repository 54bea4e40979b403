package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JehanPinto/SportsLink/internal/models"
)

// LoginResponse is the remote auth endpoint's reply to a successful login.
// The endpoint reports ids as numbers; json.Number keeps them intact until
// they are converted to the opaque string ids used everywhere else.
type LoginResponse struct {
	ID           json.Number `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Gender       string      `json:"gender"`
	Image        string      `json:"image"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// User converts the response into the profile snapshot stored with the
// session.
func (r *LoginResponse) User() models.User {
	return models.User{
		ID:        r.ID.String(),
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Image:     r.Image,
	}
}

// AuthClient authenticates against the remote endpoint.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
}

// HTTPAuthClient is the production AuthClient.
type HTTPAuthClient struct {
	baseURL string
	http    *http.Client
}

func NewAuthClient(baseURL string) *HTTPAuthClient {
	return &HTTPAuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Login posts the credentials. A rejected login maps to ErrUnauthorized and
// transport failures to ErrUnavailable, so callers can fall back with
// errors.Is.
func (c *HTTPAuthClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("auth endpoint returned status %d", resp.StatusCode)
	}

	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &result, nil
}
