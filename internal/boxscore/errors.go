package boxscore

import (
	"errors"
	"fmt"
)

// ErrNoValidEndpoint reports that every candidate endpoint answered 404 for
// a date. In range mode it is recorded per-date like any other failure.
var ErrNoValidEndpoint = errors.New("no valid boxscore endpoint")

// RequestError reports a transport failure or an unexpected HTTP status
// from a candidate endpoint. A 404 status is handled inside the candidate
// loop; anything else aborts the loop for that date.
type RequestError struct {
	URL    string
	Status int // Zero when the request never completed
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("boxscore request %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("boxscore request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
