package types

import "unicode/utf8"

// columnBase is the origin of column numbering.
const columnBase = 1

// Cursor is a running line/column position threaded strictly
// left-to-right across the input. It is never rewound; each consumed
// slice of text produces a new cursor.
type Cursor struct {
	Line int
	Col  int
}

// StartCursor returns a cursor at the beginning of a document.
func StartCursor() Cursor {
	return Cursor{Line: 1, Col: columnBase}
}

// Location returns the cursor position as a Location.
func (c Cursor) Location() Location {
	return Location{Line: c.Line, Col: c.Col}
}

// Advance returns the cursor after consuming slice. Line terminators are
// recognized in priority order "\r\n", "\n", "\r", so a CRLF pair counts
// as exactly one terminator, never two. Columns advance by codepoint, not
// byte.
func (c Cursor) Advance(slice string) Cursor {
	terms, tail := splitTerminators(slice)
	tailLen := utf8.RuneCountInString(tail)
	if terms == 0 {
		return Cursor{Line: c.Line, Col: c.Col + tailLen}
	}
	return Cursor{Line: c.Line + terms, Col: tailLen + columnBase}
}

// splitTerminators counts line terminators in s and returns the text
// after the last one.
func splitTerminators(s string) (count int, tail string) {
	last := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			count++
			last = i
		case '\n':
			i++
			count++
			last = i
		default:
			i++
		}
	}
	return count, s[last:]
}
