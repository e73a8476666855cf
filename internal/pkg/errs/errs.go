// Package errs wraps cockroachdb/errors so callers get stack traces and
// marks without importing it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Wrapf returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so Is(err, mark) holds while the message stays err's own.
// A nil err yields mark itself.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Join drops nil errors and returns nil if none remain.
func Join(errs ...error) error {
	return cr.Join(errs...)
}

// Is also matches marks, including across wrapping.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
