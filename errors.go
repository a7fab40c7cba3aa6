package ignorewalk

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New.
var (
	// ErrNotDirectory indicates the root path exists but is not a directory.
	ErrNotDirectory = errors.New("ignorewalk: root is not a directory")
)

// WalkError is a terminal traversal failure: a directory could not be opened
// or read during descent. It ends the walk; no further entries are produced.
type WalkError struct {
	// Path is the directory that failed to enumerate.
	Path string
	// Err is the underlying system error.
	Err error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("ignorewalk: read %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
