// Package store holds the in-memory application state and dispatches the
// typed state-change events. It is the only place state mutates; the UI
// layer reads snapshots and dispatches events, never touching persistence.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JehanPinto/SportsLink/internal/events"
	"github.com/JehanPinto/SportsLink/internal/logging"
	"github.com/JehanPinto/SportsLink/internal/models"
	"github.com/JehanPinto/SportsLink/internal/session"
)

const persistTimeout = 5 * time.Second

// State is the in-memory application state.
type State struct {
	Token      string
	User       *models.User
	Favourites models.Favourites
	Theme      models.Theme
}

// IsAuthenticated reports whether a session is active.
func (s State) IsAuthenticated() bool {
	return s.Token != ""
}

// Store applies events to State synchronously and forwards them to the
// persistence coordinator on a single background worker. The worker keeps
// dispatch order, so the last persisted value always converges to the last
// in-memory value; the dispatching caller never waits on a write.
type Store struct {
	mu    sync.Mutex
	state State

	coord *session.Coordinator
	log   logging.Logger

	queue     chan persistRequest
	done      chan struct{}
	closeOnce sync.Once
}

type persistRequest struct {
	ev   events.Event
	snap events.Snapshot
}

func New(coord *session.Coordinator, log logging.Logger) *Store {
	s := &Store{
		state: State{Theme: models.ThemeLight},
		coord: coord,
		log:   log,
		queue: make(chan persistRequest, 64),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Load runs the startup restore and populates the state. Call it once,
// before the UI starts reading; when it returns, favourites and theme hold
// their persisted (or default) values and any valid session is re-applied.
func (s *Store) Load(ctx context.Context) {
	restored := s.coord.Restore(ctx)

	s.mu.Lock()
	s.state.Favourites = restored.Favourites
	s.state.Theme = restored.Theme
	s.mu.Unlock()

	if restored.Session != nil {
		s.Dispatch(events.SessionRestored{
			Token: restored.Session.Token,
			User:  restored.Session.User,
		})
	}
}

// Dispatch applies ev to the in-memory state, then queues the write-through.
// The enqueue happens under the same lock as the apply, so queue order
// always equals apply order and the persisted value converges on the final
// in-memory value even under concurrent dispatchers.
func (s *Store) Dispatch(ev events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ev)
	s.queue <- persistRequest{
		ev: ev,
		snap: events.Snapshot{
			Favourites: s.state.Favourites.Clone(),
			Theme:      s.state.Theme,
		},
	}
}

// State returns a copy of the current state, safe to use after later
// dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	state.Favourites = s.state.Favourites.Clone()
	return state
}

// Close drains the persistence queue and stops the worker. Writes already
// queued are allowed to complete. Safe to call more than once; Dispatch
// must not be called after Close.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	<-s.done
}

func (s *Store) apply(ev events.Event) {
	switch e := ev.(type) {
	case events.FavouriteToggled:
		s.state.Favourites.Toggle(e.Kind, e.ID)
	case events.FavouritesCleared:
		s.state.Favourites.Clear(e.Kind)
	case events.AllFavouritesCleared:
		s.state.Favourites.ClearAll()
	case events.CredentialsSet:
		user := e.User
		s.state.Token = e.Token
		s.state.User = &user
	case events.SessionRestored:
		user := e.User
		s.state.Token = e.Token
		s.state.User = &user
	case events.LoggedOut:
		s.state.Token = ""
		s.state.User = nil
	case events.ThemeSet:
		if e.Theme.Valid() {
			s.state.Theme = e.Theme
		}
	}
}

func (s *Store) run() {
	defer close(s.done)

	for req := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := s.coord.Intercept(ctx, req.ev, req.snap); err != nil {
			s.log.Error(ctx, "persistence write failed",
				"event", fmt.Sprintf("%T", req.ev), "error", err)
		}
		cancel()
	}
}
