package hdpath

import (
	"errors"
	"fmt"
)

// ErrPathFormat is returned when a path does not start with the "m/"
// root marker.
var ErrPathFormat = errors.New("hdpath: invalid derivation path format")

// ChildIndexError reports a path segment that is not a valid child
// index. It carries the offending segment and the underlying parse
// failure.
type ChildIndexError struct {
	Segment string
	Err     error
}

func (e *ChildIndexError) Error() string {
	return fmt.Sprintf("hdpath: invalid child index %q: %v", e.Segment, e.Err)
}

func (e *ChildIndexError) Unwrap() error {
	return e.Err
}
