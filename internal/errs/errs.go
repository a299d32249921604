// Package errs defines the error kinds reported by bin2c.
//
// Every failure in the tool is fatal. The kind only decides how the command
// line front end reports it (plain diagnostic or diagnostic plus usage text).
package errs

import "errors"

// Kind classifies an error. A Kind is itself an error so it can be used as the
// target of errors.Is.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	// InvalidArgument covers unknown flags, missing flag values and surplus file names.
	InvalidArgument Kind = "invalid argument"
	// InvalidConfiguration covers bad word widths, codecs, log levels and label templates.
	InvalidConfiguration Kind = "invalid configuration"
	// IO covers unreadable input and unwritable output.
	IO Kind = "i/o error"
	// Allocation is reported when the input cannot be held in a single buffer.
	Allocation Kind = "allocation error"
	// Compression is reported when the selected codec fails.
	Compression Kind = "compression error"
)

// Error is a classified error with a user facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New returns an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns an error of the given kind that keeps err as its cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the kind of err, or the empty Kind if err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
