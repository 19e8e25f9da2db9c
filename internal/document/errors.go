package document

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrDecode   = errors.New("file encoding error")
	ErrRead     = errors.New("read file failed")
)

// Error reports a failure to load one document. It matches both its Kind and
// the underlying cause under errors.Is.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel kind carried by err, or nil when err did not
// originate in this package.
func KindOf(err error) error {
	var docErr *Error
	if errors.As(err, &docErr) {
		return docErr.Kind
	}
	return nil
}

func readError(path string, err error) error {
	kind := ErrRead
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrNotFound
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

func decodeError(path string, err error) error {
	return &Error{Kind: ErrDecode, Path: path, Err: err}
}
