package api

import "errors"

// ErrUnauthorized is returned for any HTTP 401. The response body is never
// parsed in that case; the caller tears the session down and stops.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-401 rejection from the backend, carrying the
// server-supplied text for verbatim display.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
