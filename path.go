package linecol

import (
	"strconv"
	"strings"
)

// path is a transient, parent-linked location descriptor used to label
// index entries during the collect walk. It is rebuilt at every nesting
// level and never outlives indexing; the rendered string is its only
// externally visible identity.
type path struct {
	kind   pathKind
	parent *path
	key    string
	index  int
}

type pathKind int

const (
	pathRoot pathKind = iota
	pathSeq
	pathMap
)

var rootPath = &path{kind: pathRoot}

func seqPath(parent *path, index int) *path {
	return &path{kind: pathSeq, parent: parent, index: index}
}

func mapPath(parent *path, key string) *path {
	return &path{kind: pathMap, parent: parent, key: key}
}

// String renders the JSON-Pointer-like form of the path. Two long-standing
// quirks are part of the contract and must not be normalized away:
//
//   - mapping keys are emitted literally, with no "~0"/"~1" escaping, so a
//     key containing '/' or '~' yields an ambiguous pointer;
//   - only the mapping rule special-cases a root parent, so a document
//     whose top level is a sequence renders with a doubled separator
//     ("//0" for its first element).
func (p *path) String() string {
	if p.kind == pathRoot {
		return "/"
	}
	var chain []*path
	for q := p; q.kind != pathRoot; q = q.parent {
		chain = append(chain, q)
	}
	var b strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		q := chain[i]
		switch q.kind {
		case pathSeq:
			if q.parent.kind == pathRoot {
				b.WriteByte('/')
			}
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(q.index))
		case pathMap:
			b.WriteByte('/')
			b.WriteString(q.key)
		}
	}
	return b.String()
}
