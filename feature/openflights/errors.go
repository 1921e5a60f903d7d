package openflights

import (
	"errors"
	"fmt"
)

// ErrEmptyBody is returned when a request succeeds but carries no data.
var ErrEmptyBody = errors.New("empty response body")

// LookupError describes a failed airport search.
type LookupError struct {
	Code   string
	Status int
	Err    error
}

func (e *LookupError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lookup %s: HTTP %d: %v", e.Code, e.Status, e.Err)
	}
	return fmt.Sprintf("lookup %s: %v", e.Code, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
