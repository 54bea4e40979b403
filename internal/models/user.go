// Package models holds the domain types of the SportsLink client: the user
// snapshot, favourites aggregate, theme preference, and the sports catalog
// DTOs returned by the remote data API.
package models

// User is the profile snapshot captured at login time. It is persisted with
// the session and never re-fetched, so it may go stale relative to the
// remote profile.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender,omitempty"`
	Image     string `json:"image,omitempty"`
}
