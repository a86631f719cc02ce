package linecol

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/reoring/linecol/source/gojson"
)

// FromString builds a position index from already-decoded text. The active
// driver parses the whole input first; indexing only starts on a complete
// event buffer, and any parse failure aborts with no partial table.
func FromString(s string) (*Positions, error) {
	return build([]byte(s), getDriver())
}

// FromBytes validates b as UTF-8 text and builds a position index from it.
func FromBytes(b []byte) (*Positions, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return build(b, getDriver())
}

// FromReader reads r to the end and builds a position index from the
// resulting text.
func FromReader(r io.Reader) (*Positions, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("linecol: read: %w", err)
	}
	return FromBytes(b)
}

// FromFile builds a position index from the named file.
func FromFile(name string) (*Positions, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("linecol: read %s: %w", name, err)
	}
	return FromBytes(b)
}

// FromJSON builds a position index using the strict JSON driver, bypassing
// the configured default. Useful when the input must not be given YAML's
// more forgiving reading.
func FromJSON(b []byte) (*Positions, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return build(b, gojson.Driver())
}

func build(data []byte, d Driver) (*Positions, error) {
	ps := newPositions()
	if err := d.Parse(data, ps); err != nil {
		return nil, &ParseError{Driver: d.Name(), Err: err}
	}
	ps.collect()
	ps.freeze()
	return ps, nil
}
