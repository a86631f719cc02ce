package linecol

import "errors"

// ErrInvalidUTF8 reports input bytes that are not valid UTF-8 text. It is
// returned before any parsing happens; no partial index is produced.
var ErrInvalidUTF8 = errors.New("linecol: input is not valid UTF-8")

// ParseError wraps a syntax error reported by the active driver. Index
// construction is aborted entirely; lookups never fail after a successful
// build (absent paths report ok=false instead).
type ParseError struct {
	Driver string // driver name, e.g. "yaml.v3"
	Err    error
}

func (e *ParseError) Error() string {
	return "linecol: parse (" + e.Driver + "): " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
