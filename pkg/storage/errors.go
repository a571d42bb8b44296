// File: pkg/storage/errors.go
package storage

import (
	"errors"
	"fmt"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrAccessDenied   = errors.New("access denied")
)

// Error describes a failed storage operation.
// Kind is an optional sentinel (ErrBucketNotFound, ErrAccessDenied) so callers can use errors.Is
// without losing the underlying SDK error.
type Error struct {
	Op     string
	Bucket string
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Kind != nil && e.Err != nil:
		msg = fmt.Sprintf("%v: %v", e.Kind, e.Err)
	case e.Kind != nil:
		msg = e.Kind.Error()
	case e.Err != nil:
		msg = e.Err.Error()
	default:
		msg = "unknown error"
	}
	if e.Bucket != "" {
		return fmt.Sprintf("%s bucket %q: %s", e.Op, e.Bucket, msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() []error {
	var errs []error
	for _, err := range []error{e.Kind, e.Err} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
