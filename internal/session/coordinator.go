// Package session implements the session persistence coordinator: the piece
// that mirrors selected slices of application state to the local store and
// recovers them at startup.
//
// It has four cooperating parts:
//   - the change interceptor (Intercept), which writes through recognised
//     state-change events after they have been applied in memory;
//   - the expiry clock (IsExpired), a pure check over the persisted expiry;
//   - the restore sequencer (Restore), run once before the UI is shown;
//   - the expiry watcher (StartExpiryWatcher), a periodic re-check that
//     forces logout when a live session lapses.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/JehanPinto/SportsLink/internal/dbx"
	"github.com/JehanPinto/SportsLink/internal/events"
	"github.com/JehanPinto/SportsLink/internal/logging"
	"github.com/JehanPinto/SportsLink/internal/models"
	"github.com/JehanPinto/SportsLink/internal/repositories/kv"
)

// Keys of the persisted records. The token, user and expiry entries form one
// logical session record: they are written and deleted together, always
// inside a single transaction.
const (
	keyFavourites  = "favourites"
	keyAuthToken   = "auth_token"
	keyAuthUser    = "auth_user"
	keyTokenExpiry = "token_expiry"
	keyTheme       = "theme"
)

// Config carries the coordinator's dependencies. DB is the handle the
// grouped writes run transactions on; KV serves the single-key reads and
// writes (nil means a repository is built over DB); TTL is the fixed
// session validity window counted from login. Now is for tests; nil means
// time.Now.
type Config struct {
	DB     *sql.DB
	KV     kv.Repository
	TTL    time.Duration
	Logger logging.Logger
	Now    func() time.Time
}

// Coordinator owns every persisted record. Nothing else in the application
// writes to the key-value store.
type Coordinator struct {
	db  *sql.DB
	kv  kv.Repository
	ttl time.Duration
	log logging.Logger
	now func() time.Time
}

func New(cfg Config) *Coordinator {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	repo := cfg.KV
	if repo == nil {
		repo = kv.NewSQLiteRepository(cfg.DB)
	}
	return &Coordinator{
		db:  cfg.DB,
		kv:  repo,
		ttl: cfg.TTL,
		log: cfg.Logger,
		now: now,
	}
}

func (c *Coordinator) repo() kv.Repository {
	return c.kv
}

// Intercept performs the write-through for ev. The in-memory state change
// has already happened; snap is the resulting view of the persisted slices.
// Persistence is best effort: the caller logs a returned error and moves on,
// it never rolls the state change back.
func (c *Coordinator) Intercept(ctx context.Context, ev events.Event, snap events.Snapshot) error {
	switch e := ev.(type) {
	case events.FavouriteToggled, events.FavouritesCleared, events.AllFavouritesCleared:
		return c.writeFavourites(ctx, snap.Favourites)
	case events.CredentialsSet:
		return c.writeSession(ctx, e.Token, e.User)
	case events.LoggedOut:
		return c.clearSession(ctx)
	case events.ThemeSet:
		// The snapshot, not the event, is persisted: an event carrying an
		// unknown theme was ignored by the in-memory apply, and storage
		// must mirror what memory actually holds.
		return c.writeTheme(ctx, snap.Theme)
	}
	return nil
}

func (c *Coordinator) writeFavourites(ctx context.Context, favs models.Favourites) error {
	data, err := json.Marshal(favs)
	if err != nil {
		return err
	}
	return c.repo().Set(ctx, keyFavourites, data)
}

// writeSession stores token, user snapshot and the computed expiry as one
// transaction, so a crash can never leave a token without its expiry.
func (c *Coordinator) writeSession(ctx context.Context, token string, user models.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}

	expiry := c.now().Add(c.ttl).UnixMilli()

	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		if err := r.Set(ctx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		if err := r.Set(ctx, keyAuthUser, userData); err != nil {
			return err
		}
		return r.Set(ctx, keyTokenExpiry, []byte(strconv.FormatInt(expiry, 10)))
	})
}

// clearSession deletes the whole session record in one transaction. After
// it succeeds, storage is indistinguishable from "never logged in".
func (c *Coordinator) clearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		for _, key := range []string{keyAuthToken, keyAuthUser, keyTokenExpiry} {
			if err := r.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Coordinator) writeTheme(ctx context.Context, theme models.Theme) error {
	return c.repo().Set(ctx, keyTheme, []byte(theme))
}

// IsExpired reports whether the persisted session is past its expiry
// instant. An absent, unreadable or unparsable expiry counts as expired
// (fail closed). Safe to call concurrently with interceptor writes.
func (c *Coordinator) IsExpired(ctx context.Context) bool {
	value, err := c.repo().Get(ctx, keyTokenExpiry)
	if err != nil {
		c.log.Warn(ctx, "failed to read token expiry, treating session as expired", "error", err)
		return true
	}
	if value == nil {
		return true
	}

	expiry, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		c.log.Warn(ctx, "malformed token expiry, treating session as expired", "value", string(value))
		return true
	}

	return c.now().UnixMilli() >= expiry
}
