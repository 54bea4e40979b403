// Package api contains the HTTP clients for the external collaborators: the
// remote authentication endpoint and the read-only sports data endpoints.
// Both speak plain JSON over HTTP and hold no state on our behalf.
package api

import "errors"

var (
	// ErrUnavailable wraps transport-level failures reaching a remote
	// endpoint.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized means the remote endpoint rejected the credentials.
	ErrUnauthorized = errors.New("invalid credentials")
)
