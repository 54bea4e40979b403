package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/JehanPinto/SportsLink/internal/models"
)

// Session is a restored token plus the user snapshot it was saved with.
type Session struct {
	Token string
	User  models.User
}

// Restored is the state recovered at startup. Session is nil when nothing
// valid was persisted; favourites and theme always carry a usable value.
type Restored struct {
	Theme      models.Theme
	Favourites models.Favourites
	Session    *Session
}

// Restore reads back persisted state before the UI becomes interactive.
//
// The expiry clock runs first. Theme and favourites are read regardless of
// its verdict; token and user only when the session is still valid. All
// reads fan out concurrently and Restore waits for the whole group. Every
// read failure degrades to the default for that key, so Restore never
// fails: worst case the caller gets an empty, light-themed, logged-out
// state. The session is restored only when token and user are both present
// and well formed.
func (c *Coordinator) Restore(ctx context.Context) Restored {
	expired := c.IsExpired(ctx)

	var (
		wg    sync.WaitGroup
		theme models.Theme
		favs  models.Favourites
		token []byte
		user  []byte
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		theme = c.readTheme(ctx)
	}()
	go func() {
		defer wg.Done()
		favs = c.readFavourites(ctx)
	}()

	if !expired {
		wg.Add(2)
		go func() {
			defer wg.Done()
			token = c.readValue(ctx, keyAuthToken)
		}()
		go func() {
			defer wg.Done()
			user = c.readValue(ctx, keyAuthUser)
		}()
	}

	wg.Wait()

	favs.Loaded = true
	result := Restored{Theme: theme, Favourites: favs}

	if expired {
		// Drop whatever is left of a lapsed session so a later partial
		// write cannot resurrect it.
		if err := c.clearSession(ctx); err != nil {
			c.log.Warn(ctx, "failed to clear expired session", "error", err)
		}
		return result
	}

	if len(token) == 0 || len(user) == 0 {
		return result
	}

	var u models.User
	if err := json.Unmarshal(user, &u); err != nil {
		c.log.Warn(ctx, "malformed persisted user, skipping session restore", "error", err)
		return result
	}

	result.Session = &Session{Token: string(token), User: u}
	return result
}

func (c *Coordinator) readTheme(ctx context.Context) models.Theme {
	value, err := c.repo().Get(ctx, keyTheme)
	if err != nil {
		c.log.Warn(ctx, "failed to read theme, using default", "error", err)
		return models.ThemeLight
	}
	theme := models.Theme(value)
	if !theme.Valid() {
		return models.ThemeLight
	}
	return theme
}

func (c *Coordinator) readFavourites(ctx context.Context) models.Favourites {
	var favs models.Favourites

	value, err := c.repo().Get(ctx, keyFavourites)
	if err != nil {
		c.log.Warn(ctx, "failed to read favourites, using empty collections", "error", err)
		return favs
	}
	if value == nil {
		return favs
	}
	if err := json.Unmarshal(value, &favs); err != nil {
		c.log.Warn(ctx, "malformed persisted favourites, using empty collections", "error", err)
		return models.Favourites{}
	}
	return favs
}

func (c *Coordinator) readValue(ctx context.Context, key string) []byte {
	value, err := c.repo().Get(ctx, key)
	if err != nil {
		c.log.Warn(ctx, "failed to read persisted value", "key", key, "error", err)
		return nil
	}
	return value
}
