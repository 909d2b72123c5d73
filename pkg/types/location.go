package types

import "fmt"

// Location is a 1-based line:col position in text. Col counts Unicode
// codepoints from the start of the line, not bytes.
type Location struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// DocStart is the sentinel "beginning of document" location. It sorts
// before every real location and is the default search starting point.
var DocStart = Location{}

// Before reports whether l precedes other in document order.
func (l Location) Before(other Location) bool {
	return l.Line < other.Line || (l.Line == other.Line && l.Col < other.Col)
}

// AtOrAfter reports whether l qualifies under a start filter anchored at
// start: any location on a later line qualifies, and on the same line the
// column must be at least start.Col.
func (l Location) AtOrAfter(start Location) bool {
	return l.Line > start.Line || (l.Line == start.Line && l.Col >= start.Col)
}

// Valid reports whether l is well-formed: both coordinates 1-based, or
// the DocStart sentinel.
func (l Location) Valid() bool {
	return l == DocStart || (l.Line >= 1 && l.Col >= 1)
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// OffsetSpan is byte range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s OffsetSpan) Len() int {
	return s.End - s.Start
}
