// Package kv implements the persistent key-value store backing the session
// persistence coordinator: favourites aggregate, auth token, user snapshot,
// token expiry and theme preference all live here as individual entries.
package kv

import (
	"context"
)

// Repository is a flat key-value store. Get returns (nil, nil) when the key
// is absent; callers treat nil as "no persisted value".
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
