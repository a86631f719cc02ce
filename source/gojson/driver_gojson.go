// Package gojson provides an alternate event driver for strict JSON input,
// tokenized with goccy/go-json. Markers are reconstructed from the raw
// bytes: the decoder yields tokens in order, and the driver locates each
// token's start by scanning past filler (whitespace, ',' and ':') from the
// end of the previous token.
package gojson

import (
	"bytes"
	"io"
	"sort"
	"unicode/utf8"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/linecol/internal/engine"
)

// Driver returns the go-json-backed strict JSON event driver.
func Driver() eng.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "go-json" }

func (driver) Parse(data []byte, rcv eng.Receiver) error {
	s := &scanner{data: data, lines: lineStarts(data)}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	rcv.OnEvent(eng.Event{Kind: eng.KindStreamStart}, eng.Marker{Line: 1, Col: 0})
	depth := 0
	sawValue := false
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				// The decoder reports plain EOF even mid-container, so
				// truncation has to be caught here: an open container or
				// an input with no value at all is not a clean end.
				if depth != 0 || !sawValue {
					return io.ErrUnexpectedEOF
				}
				break
			}
			return err
		}
		sawValue = true

		switch v := tok.(type) {
		case j.Delim:
			m := s.next(1)
			switch v {
			case '{':
				if depth == 0 {
					rcv.OnEvent(eng.Event{Kind: eng.KindDocumentStart}, m)
				}
				depth++
				rcv.OnEvent(eng.Event{Kind: eng.KindMappingStart}, m)
			case '}':
				depth--
				rcv.OnEvent(eng.Event{Kind: eng.KindMappingEnd}, m)
				if depth == 0 {
					rcv.OnEvent(eng.Event{Kind: eng.KindDocumentEnd}, m)
				}
			case '[':
				if depth == 0 {
					rcv.OnEvent(eng.Event{Kind: eng.KindDocumentStart}, m)
				}
				depth++
				rcv.OnEvent(eng.Event{Kind: eng.KindSequenceStart}, m)
			case ']':
				depth--
				rcv.OnEvent(eng.Event{Kind: eng.KindSequenceEnd}, m)
				if depth == 0 {
					rcv.OnEvent(eng.Event{Kind: eng.KindDocumentEnd}, m)
				}
			}
		case string:
			m := s.nextString()
			emitScalar(rcv, depth, eng.Event{Kind: eng.KindScalar, Value: v, Style: eng.StyleDoubleQuoted, Tag: "!!str"}, m)
		case j.Number:
			m := s.next(len(string(v)))
			emitScalar(rcv, depth, eng.Event{Kind: eng.KindScalar, Value: string(v), Style: eng.StylePlain, Tag: numberTag(string(v))}, m)
		case bool:
			n := 4 // "true"
			val := "true"
			if !v {
				n, val = 5, "false"
			}
			m := s.next(n)
			emitScalar(rcv, depth, eng.Event{Kind: eng.KindScalar, Value: val, Style: eng.StylePlain, Tag: "!!bool"}, m)
		case nil:
			m := s.next(4) // "null"
			emitScalar(rcv, depth, eng.Event{Kind: eng.KindScalar, Value: "null", Style: eng.StylePlain, Tag: "!!null"}, m)
		}
	}
	rcv.OnEvent(eng.Event{Kind: eng.KindStreamEnd}, eng.Marker{Line: 1, Col: 0})
	return nil
}

// emitScalar wraps bare top-level scalars in their own document envelope.
func emitScalar(rcv eng.Receiver, depth int, ev eng.Event, m eng.Marker) {
	if depth == 0 {
		rcv.OnEvent(eng.Event{Kind: eng.KindDocumentStart}, m)
		rcv.OnEvent(ev, m)
		rcv.OnEvent(eng.Event{Kind: eng.KindDocumentEnd}, m)
		return
	}
	rcv.OnEvent(ev, m)
}

func numberTag(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', 'e', 'E':
			return "!!float"
		}
	}
	return "!!int"
}

// scanner walks the raw input in lockstep with the decoder to recover
// token start positions.
type scanner struct {
	data  []byte
	lines []int // byte offset of each line start
	off   int   // just past the previous token
}

// next skips filler, marks the token start, and advances past n bytes of
// token text.
func (s *scanner) next(n int) eng.Marker {
	s.skipFiller()
	m := s.markerAt(s.off)
	s.off += n
	return m
}

// nextString advances past a raw quoted string, honoring escapes. The raw
// length may differ from the decoded value's, so it cannot use next.
func (s *scanner) nextString() eng.Marker {
	s.skipFiller()
	m := s.markerAt(s.off)
	i := s.off + 1 // opening quote
	for i < len(s.data) {
		switch s.data[i] {
		case '\\':
			i += 2
			continue
		case '"':
			i++
			s.off = i
			return m
		}
		i++
	}
	s.off = i
	return m
}

func (s *scanner) skipFiller() {
	for s.off < len(s.data) {
		switch s.data[s.off] {
		case ' ', '\t', '\r', '\n', ',', ':':
			s.off++
		default:
			return
		}
	}
}

func (s *scanner) markerAt(off int) eng.Marker {
	line := sort.SearchInts(s.lines, off+1) // count of line starts <= off
	start := s.lines[line-1]
	return eng.Marker{Line: line, Col: utf8.RuneCount(s.data[start:off])}
}

func lineStarts(data []byte) []int {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
