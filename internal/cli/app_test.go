package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopExpiryWatcher_WaitsForWatcherExit(t *testing.T) {
	a := newTestApp(t, &fakeAuthSvc{})
	// Empty kv store means the expiry check reports expired on the first
	// tick, so a leaked watcher goroutine would dispatch into the store.
	a.config.ExpiryCheckInterval = time.Millisecond

	a.startExpiryWatcher(context.Background())
	a.stopExpiryWatcher()

	assert.Nil(t, a.stopWatcher)
	assert.Nil(t, a.watcherDone)

	// The queue is closed now; a watcher callback still in flight would
	// panic the process. Give a leaked goroutine time to prove the stop
	// did not wait.
	a.store.Close()
	time.Sleep(20 * time.Millisecond)
}

func TestStartExpiryWatcher_RestartReplacesPrevious(t *testing.T) {
	a := newTestApp(t, &fakeAuthSvc{})

	a.startExpiryWatcher(context.Background())
	first := a.watcherDone

	a.startExpiryWatcher(context.Background())

	select {
	case <-first:
	default:
		t.Fatal("previous watcher still running after restart")
	}
	a.stopExpiryWatcher()
}
