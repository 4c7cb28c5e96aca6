// Package errs defines the failure kinds shared by the loader and the renderers.
//
// Every error returned from this module that stems from bad input or a failed write
// matches exactly one of the sentinel kinds below with errors.Is, and keeps its
// underlying cause reachable through the same chain.
package errs

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("not found")
	// ErrParse reports a field that is not a finite number, or malformed CSV.
	ErrParse = errors.New("parse error")
	// ErrShape reports ragged rows, reshape length mismatches and
	// mismatched series column lengths.
	ErrShape = errors.New("shape error")
	// ErrConfig reports mismatched labels/series counts and invalid settings.
	ErrConfig = errors.New("config error")
	// ErrIO reports a failed render or save.
	ErrIO = errors.New("io error")
)

// Error carries the kind of a failure together with enough context to diagnose it.
type Error struct {
	Kind   error  // one of the sentinels above
	Op     string // operation, e.g. "load", "render", "plot"
	Path   string // file involved, if any
	Detail string // expected vs actual, line numbers, etc.
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New builds an *Error of the given kind.
func New(kind error, op, path, detail string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Detail: detail, Err: cause}
}

// Shape is shorthand for a shape failure without a file or cause.
func Shape(op, detail string) *Error {
	return New(ErrShape, op, "", detail, nil)
}

// Config is shorthand for a configuration failure without a file or cause.
func Config(op, detail string) *Error {
	return New(ErrConfig, op, "", detail, nil)
}

// IO wraps a write/render failure on path.
func IO(op, path string, cause error) *Error {
	return New(ErrIO, op, path, "", cause)
}

// KindOf returns the sentinel kind of err, or nil if err carries none.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrParse, ErrShape, ErrConfig, ErrIO} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
