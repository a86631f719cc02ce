// Package yamlsrc provides the default event driver. It parses YAML — and,
// YAML 1.2 being a superset, plain JSON — with gopkg.in/yaml.v3 and pushes
// a marked event stream derived from the decoded node tree.
package yamlsrc

import (
	"bytes"
	"errors"
	"io"

	eng "github.com/reoring/linecol/internal/engine"
	"gopkg.in/yaml.v3"
)

// Driver returns the yaml.v3-backed event driver.
func Driver() eng.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "yaml.v3" }

// Parse decodes every document in the stream and replays each node tree as
// marked events. Node positions come straight from yaml.v3, with columns
// shifted from 1-based to 0-based to match the marker convention.
func (driver) Parse(data []byte, rcv eng.Receiver) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	rcv.OnEvent(eng.Event{Kind: eng.KindStreamStart}, eng.Marker{Line: 1, Col: 0})
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		rcv.OnEvent(eng.Event{Kind: eng.KindDocumentStart}, markerOf(&root))
		for _, n := range root.Content {
			walk(n, rcv)
		}
		rcv.OnEvent(eng.Event{Kind: eng.KindDocumentEnd}, markerOf(&root))
	}
	rcv.OnEvent(eng.Event{Kind: eng.KindStreamEnd}, eng.Marker{Line: 1, Col: 0})
	return nil
}

func walk(n *yaml.Node, rcv eng.Receiver) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			walk(c, rcv)
		}
	case yaml.MappingNode:
		rcv.OnEvent(eng.Event{Kind: eng.KindMappingStart}, markerOf(n))
		// Content alternates key, value, key, value, ...
		for _, c := range n.Content {
			walk(c, rcv)
		}
		rcv.OnEvent(eng.Event{Kind: eng.KindMappingEnd}, markerOf(n))
	case yaml.SequenceNode:
		rcv.OnEvent(eng.Event{Kind: eng.KindSequenceStart}, markerOf(n))
		for _, c := range n.Content {
			walk(c, rcv)
		}
		rcv.OnEvent(eng.Event{Kind: eng.KindSequenceEnd}, markerOf(n))
	case yaml.ScalarNode:
		rcv.OnEvent(eng.Event{
			Kind:  eng.KindScalar,
			Value: n.Value,
			Style: styleOf(n.Style),
			Tag:   n.Tag,
		}, markerOf(n))
	case yaml.AliasNode:
		rcv.OnEvent(eng.Event{Kind: eng.KindAlias, Value: n.Value}, markerOf(n))
	}
}

func markerOf(n *yaml.Node) eng.Marker {
	m := eng.Marker{Line: n.Line, Col: n.Column - 1}
	if m.Line < 1 {
		m.Line = 1
	}
	if m.Col < 0 {
		m.Col = 0
	}
	return m
}

func styleOf(s yaml.Style) eng.ScalarStyle {
	switch {
	case s&yaml.SingleQuotedStyle != 0:
		return eng.StyleSingleQuoted
	case s&yaml.DoubleQuotedStyle != 0:
		return eng.StyleDoubleQuoted
	case s&yaml.LiteralStyle != 0:
		return eng.StyleLiteral
	case s&yaml.FoldedStyle != 0:
		return eng.StyleFolded
	}
	return eng.StylePlain
}
