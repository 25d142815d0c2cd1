// Package errs narrows cockroachdb/errors to the three primitives the
// codebase uses: stack-carrying construction, wrapping, and sentinel marking.
package errs

import cr "github.com/cockroachdb/errors"

// New returns an error that carries a stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an errors.Is target without touching err's
// message. Marking a nil err yields the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
