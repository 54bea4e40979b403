// Package events defines the closed set of state-change events flowing
// through the application store. The persistence coordinator switches over
// these types to decide what to write through, so adding a variant here is
// the single place a new persisted slice of state gets wired in.
package events

import "github.com/JehanPinto/SportsLink/internal/models"

// Event is a discrete, named state change. The interface is sealed: only
// types in this package can implement it.
type Event interface {
	isEvent()
}

// FavouriteToggled flips membership of a single id in one of the
// favourites collections.
type FavouriteToggled struct {
	Kind models.EntityKind
	ID   string
}

// FavouritesCleared empties one favourites collection.
type FavouritesCleared struct {
	Kind models.EntityKind
}

// AllFavouritesCleared empties all three favourites collections.
type AllFavouritesCleared struct{}

// CredentialsSet records a fresh login: a bearer token plus the profile
// snapshot captured at login time.
type CredentialsSet struct {
	Token string
	User  models.User
}

// SessionRestored re-populates auth state from a persisted, non-expired
// session at startup. It is produced only by the restore sequencer and,
// unlike CredentialsSet, does not trigger a persistence write.
type SessionRestored struct {
	Token string
	User  models.User
}

// LoggedOut ends the session, whether user-initiated or forced by expiry.
type LoggedOut struct{}

// ThemeSet switches the UI theme preference.
type ThemeSet struct {
	Theme models.Theme
}

func (FavouriteToggled) isEvent()     {}
func (FavouritesCleared) isEvent()    {}
func (AllFavouritesCleared) isEvent() {}
func (CredentialsSet) isEvent()       {}
func (SessionRestored) isEvent()      {}
func (LoggedOut) isEvent()            {}
func (ThemeSet) isEvent()             {}

// Snapshot is the post-apply view of the persisted slices of state. The
// store hands it to the coordinator together with the event, so writes
// always serialize the state the event produced, not the state it saw.
type Snapshot struct {
	Favourites models.Favourites
	Theme      models.Theme
}
