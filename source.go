package linecol

import (
	"sync"

	eng "github.com/reoring/linecol/internal/engine"
	yamlsrc "github.com/reoring/linecol/source/yaml"
)

// Aliases over the internal event protocol so drivers can be implemented
// outside this module against the public package. The aliases mirror the
// internal types exactly.
type (
	Kind          = eng.Kind
	ScalarStyle   = eng.ScalarStyle
	Event         = eng.Event
	Marker        = eng.Marker
	EventReceiver = eng.Receiver
	Driver        = eng.Driver
)

const (
	KindNothing       Kind = eng.KindNothing
	KindStreamStart   Kind = eng.KindStreamStart
	KindStreamEnd     Kind = eng.KindStreamEnd
	KindDocumentStart Kind = eng.KindDocumentStart
	KindDocumentEnd   Kind = eng.KindDocumentEnd
	KindAlias         Kind = eng.KindAlias
	KindScalar        Kind = eng.KindScalar
	KindSequenceStart Kind = eng.KindSequenceStart
	KindSequenceEnd   Kind = eng.KindSequenceEnd
	KindMappingStart  Kind = eng.KindMappingStart
	KindMappingEnd    Kind = eng.KindMappingEnd
)

const (
	StyleAny          ScalarStyle = eng.StyleAny
	StylePlain        ScalarStyle = eng.StylePlain
	StyleSingleQuoted ScalarStyle = eng.StyleSingleQuoted
	StyleDoubleQuoted ScalarStyle = eng.StyleDoubleQuoted
	StyleLiteral      ScalarStyle = eng.StyleLiteral
	StyleFolded       ScalarStyle = eng.StyleFolded
)

var (
	driverMu      sync.RWMutex
	currentDriver Driver = yamlsrc.Driver()
)

// SetDriver replaces the global event driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default yaml.v3-backed driver, which
// accepts both YAML and JSON input.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = yamlsrc.Driver()
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}
