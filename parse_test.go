package linecol_test

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/reoring/linecol"
	"github.com/reoring/linecol/source/gojson"
)

func TestFromString_ParseErrorAbortsConstruction(t *testing.T) {
	_, err := linecol.FromString("key: [1, 2\n")
	if err == nil {
		t.Fatalf("expected a parse error for an unclosed flow sequence")
	}
	var perr *linecol.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if perr.Driver == "" || perr.Unwrap() == nil {
		t.Fatalf("ParseError missing driver or cause: %+v", perr)
	}
}

func TestFromBytes_InvalidUTF8(t *testing.T) {
	_, err := linecol.FromBytes([]byte{'a', ':', ' ', 0xff, 0xfe})
	if !errors.Is(err, linecol.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestFromReader(t *testing.T) {
	ps, err := linecol.FromReader(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if pos, ok := ps.Get("/foo/0/boom"); !ok || pos != (linecol.Position{Line: 3, Col: 6}) {
		t.Fatalf("/foo/0/boom = %+v, %v; want {3 6}, true", pos, ok)
	}
}

func TestFromReader_PropagatesIOError(t *testing.T) {
	f, err := os.Open("testdata/example.yml")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	f.Close() // reading a closed file fails
	if _, err := linecol.FromReader(f); err == nil {
		t.Fatalf("expected an I/O error from a closed reader")
	}
}

func TestFromJSON(t *testing.T) {
	data, err := os.ReadFile("testdata/example.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	ps, err := linecol.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	// The strict JSON driver must agree with the default driver on token
	// start positions.
	if pos, ok := ps.Get("/test/2/nested/foo"); !ok || pos != (linecol.Position{Line: 7, Col: 16}) {
		t.Fatalf("/test/2/nested/foo = %+v, %v; want {7 16}, true", pos, ok)
	}
	if pos, ok := ps.Get("/test"); !ok || pos != (linecol.Position{Line: 2, Col: 4}) {
		t.Fatalf("/test = %+v, %v; want {2 4}, true", pos, ok)
	}
}

func TestFromJSON_RejectsMalformedInput(t *testing.T) {
	_, err := linecol.FromJSON([]byte(`{"a": `))
	if err == nil {
		t.Fatalf("expected a parse error for truncated JSON")
	}
	var perr *linecol.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestFromJSON_NoPartialTableOnTruncation(t *testing.T) {
	// Mid-container truncation must abort construction entirely, not
	// hand back an index of whatever was seen before the cut.
	ps, err := linecol.FromJSON([]byte(`{"a": {"b": `))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF via ParseError, got %v", err)
	}
	if ps != nil {
		t.Fatalf("expected no partial table, got %d entries", ps.Len())
	}
}

func TestSetDriver_SwapsDefault(t *testing.T) {
	linecol.SetDriver(gojson.Driver())
	defer linecol.UseDefaultDriver()

	ps, err := linecol.FromString(`{"a": 1}`)
	if err != nil {
		t.Fatalf("FromString with go-json driver: %v", err)
	}
	if pos, ok := ps.Get("/a"); !ok || pos != (linecol.Position{Line: 1, Col: 1}) {
		t.Fatalf("/a = %+v, %v; want {1 1}, true", pos, ok)
	}

	// YAML input must now be rejected by the strict driver.
	if _, err := linecol.FromString(sampleYAML); err == nil {
		t.Fatalf("expected the strict JSON driver to reject YAML input")
	}
}
