package linecol

// Position is the line and column at which a value's token began in the
// source text, taken verbatim from the upstream parser's marker. Line is
// 1-based; Col is the 0-based column, counted in runes, following the
// marker convention of libyaml-style parsers.
type Position struct {
	Line int
	Col  int
}

// Entry pairs a rendered pointer string with the position it resolves to.
type Entry struct {
	Path string
	Pos  Position
}
