package engine

// Kind identifies the raw event kinds a source driver may push. The set
// mirrors a libyaml-style marked event stream; envelope kinds (stream and
// document boundaries) and aliases are pushed by drivers but filtered out
// by the receiver before indexing.
type Kind int

const (
	KindNothing Kind = iota
	KindStreamStart
	KindStreamEnd
	KindDocumentStart
	KindDocumentEnd
	KindAlias
	KindScalar
	KindSequenceStart
	KindSequenceEnd
	KindMappingStart
	KindMappingEnd
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "Nothing"
	case KindStreamStart:
		return "StreamStart"
	case KindStreamEnd:
		return "StreamEnd"
	case KindDocumentStart:
		return "DocumentStart"
	case KindDocumentEnd:
		return "DocumentEnd"
	case KindAlias:
		return "Alias"
	case KindScalar:
		return "Scalar"
	case KindSequenceStart:
		return "SequenceStart"
	case KindSequenceEnd:
		return "SequenceEnd"
	case KindMappingStart:
		return "MappingStart"
	case KindMappingEnd:
		return "MappingEnd"
	}
	return "Unknown"
}

// ScalarStyle records how a scalar was written in the source.
type ScalarStyle int

const (
	StyleAny ScalarStyle = iota
	StylePlain
	StyleSingleQuoted
	StyleDoubleQuoted
	StyleLiteral
	StyleFolded
)

// Event is one marked parser event. Value, Style and Tag are populated for
// scalar events only; Tag carries the resolved type tag (e.g. "!!bool")
// when the driver knows it.
type Event struct {
	Kind  Kind
	Value string
	Style ScalarStyle
	Tag   string
}

// Marker is the source position at which the event's token began.
// Line is 1-based; Col is the 0-based column, counted in runes.
type Marker struct {
	Line int
	Col  int
}

// Receiver consumes marked events pushed by a Driver during a single parse
// pass. Events must be delivered in the order the parser produced them.
type Receiver interface {
	OnEvent(ev Event, m Marker)
}

// Driver turns raw document bytes into a marked event stream.
type Driver interface {
	Parse(data []byte, rcv Receiver) error
	Name() string
}
