package fileops

import (
	"errors"
	"fmt"
)

// PrecondError reports a condition detected before any mutation occurred:
// missing source, existing target, non-empty directory. The filesystem is
// untouched when one is returned.
type PrecondError struct {
	Op     string
	Path   string
	Reason string
}

func (e *PrecondError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Reason)
}

// OpError wraps an OS-level failure from the single mutating call of an
// operation (permission denied, disk full, invalid name).
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether err is a precondition violation rather
// than a runtime failure.
func IsPrecondition(err error) bool {
	var pe *PrecondError
	return errors.As(err, &pe)
}
