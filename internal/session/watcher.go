package session

import (
	"context"
	"time"
)

// StartExpiryWatcher polls the expiry clock every interval while a session
// is live. When the persisted session turns expired it invokes onExpired
// exactly once and returns. Cancelling ctx stops the watcher; the ticker is
// stopped on the way out, so nothing fires after either exit path.
//
// Run it on its own goroutine:
//
//	go coord.StartExpiryWatcher(ctx, 5*time.Minute, forceLogout)
func (c *Coordinator) StartExpiryWatcher(ctx context.Context, interval time.Duration, onExpired func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			expired := c.IsExpired(checkCtx)
			cancel()

			// A cancellation that landed while the check was in flight
			// wins: the callback must never run after a stop.
			if ctx.Err() != nil {
				return
			}

			if expired {
				onExpired()
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
