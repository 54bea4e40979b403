package session

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JehanPinto/SportsLink/internal/logging"
)

func TestExpiryWatcher_FiresOnceOnExpiry(t *testing.T) {
	db := setupDB(t)
	c := newCoordinator(t, db, nil) // empty store: always expired

	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		c.StartExpiryWatcher(context.Background(), 5*time.Millisecond, func() {
			calls.Add(1)
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire on expiry")
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestExpiryWatcher_DoesNotFireWhileValid(t *testing.T) {
	db := setupDB(t)
	clock := &testClock{t: time.UnixMilli(1_700_000_000_000)}
	c := newCoordinator(t, db, clock)

	future := clock.t.Add(time.Hour).UnixMilli()
	setKey(t, db, keyTokenExpiry, []byte(strconv.FormatInt(future, 10)))

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		c.StartExpiryWatcher(ctx, 5*time.Millisecond, func() {
			calls.Add(1)
		})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancellation")
	}
	assert.Zero(t, calls.Load())
}

func TestExpiryWatcher_DoesNotFireWhenCancelledMidCheck(t *testing.T) {
	db := setupDB(t)

	past := time.UnixMilli(1_700_000_000_000)
	setKey(t, db, keyTokenExpiry, []byte(strconv.FormatInt(past.UnixMilli(), 10)))

	clockEntered := make(chan struct{})
	clockGate := make(chan struct{})
	c := New(Config{
		DB:     db,
		TTL:    7 * 24 * time.Hour,
		Logger: logging.NewZerologLogger(zerolog.Nop()),
		Now: func() time.Time {
			close(clockEntered)
			<-clockGate
			return past.Add(time.Hour) // well past expiry
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.StartExpiryWatcher(ctx, 5*time.Millisecond, func() {
			t.Error("onExpired must not fire after cancellation")
		})
		close(done)
	}()

	// Cancel while the expiry check is blocked on the clock, then let the
	// check finish.
	<-clockEntered
	cancel()
	close(clockGate)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not exit")
	}
}

func TestExpiryWatcher_StopsOnCancelBeforeFirstTick(t *testing.T) {
	db := setupDB(t)
	c := newCoordinator(t, db, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		c.StartExpiryWatcher(ctx, time.Hour, func() {
			t.Error("onExpired must not fire after cancellation")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not exit")
	}
}
