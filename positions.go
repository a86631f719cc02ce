package linecol

import (
	"sort"

	eng "github.com/reoring/linecol/internal/engine"
)

// record is one normalized event paired with the marker where its token
// began. The buffer preserves parser arrival order exactly; indexing
// replays it like balanced parentheses.
type record struct {
	ev   Event
	mark Marker
}

// Positions is a finished lookup table from pointer string to Position.
//
// It doubles as the event receiver during construction: the active driver
// pushes marked events into it, envelope and alias events are dropped, and
// a single forward replay of the buffer builds the index. Once an entry
// point returns it, the table is immutable and safe for concurrent readers.
type Positions struct {
	pos    int
	events []record
	index  map[string]Position
	keys   []string
}

func newPositions() *Positions {
	return &Positions{index: make(map[string]Position)}
}

// OnEvent implements EventReceiver. Stream and document envelopes are
// structural noise for indexing and are dropped; alias events are dropped
// too, since alias resolution is out of scope.
func (ps *Positions) OnEvent(ev Event, m Marker) {
	switch ev.Kind {
	case eng.KindScalar, eng.KindSequenceStart, eng.KindSequenceEnd,
		eng.KindMappingStart, eng.KindMappingEnd:
		ps.events = append(ps.events, record{ev: ev, mark: m})
	}
}

// next pulls one event off the buffer. The cursor only advances; a
// consumed record is never revisited.
func (ps *Positions) next() (Event, Position, bool) {
	if ps.pos >= len(ps.events) {
		return Event{}, Position{}, false
	}
	r := ps.events[ps.pos]
	ps.pos++
	return r.ev, Position{Line: r.mark.Line, Col: r.mark.Col}, true
}

// Get returns the position of the value addressed by ptr.
//
// Lookup is exact-match only: the caller must produce the same string the
// renderer emits, including its quirks (no "~0"/"~1" escaping, and the
// doubled separator for elements of a top-level sequence, e.g. "//0").
// Absent paths report ok=false; lookups never fail.
func (ps *Positions) Get(ptr string) (Position, bool) {
	p, ok := ps.index[ptr]
	return p, ok
}

// Len returns the number of indexed entries.
func (ps *Positions) Len() int { return len(ps.index) }

// Entries returns every (path, position) pair in ascending lexicographic
// path order. The table is immutable, so repeated calls observe the same
// entries.
func (ps *Positions) Entries() []Entry {
	out := make([]Entry, 0, len(ps.keys))
	for _, k := range ps.keys {
		out = append(out, Entry{Path: k, Pos: ps.index[k]})
	}
	return out
}

type frameKind int

const (
	frameRoot frameKind = iota
	frameSeq
	frameMap
)

// frame is one level of the replay walk: the container being traversed,
// the path that labels it, and the next element index for sequences.
type frame struct {
	kind frameKind
	path *path
	next int
}

// collect replays the event buffer once, labeling every visited value with
// its pointer string. The walk mirrors the nesting the parser saw, but
// keeps its frames on an explicit heap-allocated stack so that depth is
// bounded by memory rather than the call stack.
//
// Two asymmetries are deliberate and load-bearing:
//
//   - a mapping entry is always recorded at its key token's position,
//     never the value's, while a sequence element records the element
//     token's own position (there is no separate key token);
//   - unexpected events at any level are absorbed by closing the current
//     frame without recording anything, so e.g. sequences nested directly
//     inside sequences are not indexed. Malformed orderings never surface
//     as errors here.
func (ps *Positions) collect() {
	stack := []frame{{kind: frameRoot, path: rootPath}}
	for len(stack) > 0 {
		ev, pos, ok := ps.next()
		if !ok {
			return
		}
		top := &stack[len(stack)-1]
		switch top.kind {
		case frameRoot:
			// The root frame survives container closes, so sibling
			// top-level documents in the remaining stream are walked too.
			switch ev.Kind {
			case eng.KindSequenceStart:
				stack = append(stack, frame{kind: frameSeq, path: top.path})
			case eng.KindMappingStart:
				stack = append(stack, frame{kind: frameMap, path: top.path})
			default:
				stack = stack[:len(stack)-1]
			}
		case frameSeq:
			switch ev.Kind {
			case eng.KindSequenceEnd:
				stack = stack[:len(stack)-1]
			case eng.KindScalar:
				ps.index[seqPath(top.path, top.next).String()] = pos
				top.next++
			case eng.KindMappingStart:
				child := seqPath(top.path, top.next)
				top.next++
				stack = append(stack, frame{kind: frameMap, path: child})
			default:
				stack = stack[:len(stack)-1]
			}
		case frameMap:
			switch ev.Kind {
			case eng.KindMappingEnd:
				stack = stack[:len(stack)-1]
			case eng.KindScalar:
				entry := mapPath(top.path, ev.Value)
				ps.index[entry.String()] = pos
				// Classify the value with the following event. Scalar
				// values are consumed and discarded: the key's position
				// already stands for this entry.
				if vev, _, ok := ps.next(); ok {
					switch vev.Kind {
					case eng.KindMappingStart:
						stack = append(stack, frame{kind: frameMap, path: entry})
					case eng.KindSequenceStart:
						stack = append(stack, frame{kind: frameSeq, path: entry})
					}
				}
			default:
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// freeze fixes the iteration order after collect has run.
func (ps *Positions) freeze() {
	ps.keys = make([]string, 0, len(ps.index))
	for k := range ps.index {
		ps.keys = append(ps.keys, k)
	}
	sort.Strings(ps.keys)
}
