package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoAPIKeys is returned when a client is built without credentials.
	ErrNoAPIKeys = errors.New("tmdb: no api keys configured")
	// ErrRateLimited matches responses with status 429.
	ErrRateLimited = errors.New("tmdb: rate limited")
)

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: HTTP %d for %s: %s", e.Code, e.Endpoint, e.Body)
}

// Is lets errors.Is(err, ErrRateLimited) match 429 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrRateLimited && e.Code == http.StatusTooManyRequests
}
