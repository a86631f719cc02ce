package linecol

// Package linecol answers "where in the source text was this value
// written?" for parsed YAML and JSON documents, keyed by JSON-Pointer-style
// path strings.
//
// Design policy:
// - Keep only public APIs in the root package; put the event protocol under internal/.
// - Place input drivers under source/ and the CLI under cmd/linecol.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ps, err := linecol.FromString("foo:\n    - bar: baz\n      boom: true\n")
//	pos, ok := ps.Get("/foo/0/boom") // Position{Line: 3, Col: 6}, true
//
// Positions always point at the token where the parser began scanning the
// addressed value; for mapping entries this is the key token, not the
// value. Alias nodes are not resolved, and keys are rendered literally —
// there is no "~0"/"~1" escaping. Positions.Get documents the exact
// pointer format, including its quirks.
