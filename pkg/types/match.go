package types

// Snippet contains context around a match.
type Snippet struct {
	Before   string // text before the match
	Matching string // the matched text
	After    string // text after the match
}

// Match is a single located occurrence of a pattern.
type Match struct {
	// Text is the matched text.
	Text string

	// Offset is the byte range of the match within the input.
	Offset OffsetSpan

	// Begin is the position of the first codepoint of the match. This is
	// the location reported by Locate.
	Begin Location

	// End is the position immediately after the last codepoint of the
	// match. For matches spanning line terminators, End.Line > Begin.Line.
	End Location

	// Snippet holds surrounding context lines when requested.
	Snippet *Snippet
}
