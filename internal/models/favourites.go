package models

// EntityKind identifies which favourites collection an id belongs to.
type EntityKind string

const (
	KindTeam   EntityKind = "team"
	KindEvent  EntityKind = "event"
	KindPlayer EntityKind = "player"
)

// Favourites holds the user-curated sets of team, event and player ids.
// Each collection keeps insertion order but behaves as a set: toggling an id
// that is already present removes it. Loaded marks whether the startup
// restore has completed; it is in-memory only and never persisted.
type Favourites struct {
	TeamIDs   []string `json:"teamIds"`
	EventIDs  []string `json:"eventIds"`
	PlayerIDs []string `json:"playerIds"`
	Loaded    bool     `json:"-"`
}

// Toggle adds id to the collection for kind, or removes it if present.
func (f *Favourites) Toggle(kind EntityKind, id string) {
	ids := f.ids(kind)
	if ids == nil {
		return
	}
	*ids = toggle(*ids, id)
}

// Contains reports whether id is in the collection for kind.
func (f *Favourites) Contains(kind EntityKind, id string) bool {
	ids := f.ids(kind)
	if ids == nil {
		return false
	}
	for _, v := range *ids {
		if v == id {
			return true
		}
	}
	return false
}

// Clear empties the collection for kind.
func (f *Favourites) Clear(kind EntityKind) {
	if ids := f.ids(kind); ids != nil {
		*ids = nil
	}
}

// ClearAll empties all three collections.
func (f *Favourites) ClearAll() {
	f.TeamIDs = nil
	f.EventIDs = nil
	f.PlayerIDs = nil
}

// Clone returns a deep copy, so snapshots handed to the persistence layer
// are unaffected by later mutations.
func (f Favourites) Clone() Favourites {
	c := f
	c.TeamIDs = append([]string(nil), f.TeamIDs...)
	c.EventIDs = append([]string(nil), f.EventIDs...)
	c.PlayerIDs = append([]string(nil), f.PlayerIDs...)
	return c
}

func (f *Favourites) ids(kind EntityKind) *[]string {
	switch kind {
	case KindTeam:
		return &f.TeamIDs
	case KindEvent:
		return &f.EventIDs
	case KindPlayer:
		return &f.PlayerIDs
	}
	return nil
}

func toggle(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
