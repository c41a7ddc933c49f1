package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: connection refused,
	// timeouts, unreadable responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks an expired or absent ambient credential.
	ErrUnauthorized = errors.New("unauthorized")
)
