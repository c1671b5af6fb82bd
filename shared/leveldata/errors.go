package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrMissing   = errors.New("level resource missing")
	ErrMalformed = errors.New("level resource malformed")
)

// ResourceError reports a level that could not be loaded. No partial level
// is ever returned alongside it.
type ResourceError struct {
	ID   int
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("level %d (%s): %v", e.ID, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
