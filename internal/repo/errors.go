package repo

import (
	"fmt"
	"io/fs"
)

// ErrNoMarker is reported when no ancestor up to the filesystem root holds a
// .git directory. It matches fs.ErrNotExist under errors.Is.
var ErrNoMarker = fmt.Errorf("no %s directory was found in any parent: %w", MarkerDir, fs.ErrNotExist)

// LocateError describes a failed root lookup. Err is the underlying
// filesystem error or ErrNoMarker.
type LocateError struct {
	Path string
	Err  error
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("locate repository root for %s: %v", e.Path, e.Err)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}
