// Package matcher produces lazy streams of match spans over text.
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/bhdirect-ebooks/sublocator/pkg/pattern"
)

// Span is one occurrence: the text between the previous match and this
// one, and the matched text itself. Concatenating every span's Preceding
// and Matched in order reproduces the scanned prefix of the input with
// no gaps or overlaps.
type Span struct {
	Preceding string
	Matched   string
}

// Stream is a pull iterator over the spans of a pattern in text, in
// document order. Usage follows bufio.Scanner: Scan, then Span, then Err
// once Scan returns false. Consuming only a prefix of the stream scans
// only the corresponding prefix of the text.
type Stream struct {
	span Span
	err  error
	next func() (Span, bool, error)
}

// New returns a stream of c's matches in text.
func New(text string, c *pattern.Compiled) *Stream {
	if c.Re != nil {
		return &Stream{next: regexNext(text, c.Re)}
	}
	return &Stream{next: literalNext(text, c.Lit)}
}

// Scan advances to the next occurrence. It returns false at the end of
// the matches or on error; Err distinguishes the two.
func (s *Stream) Scan() bool {
	if s.err != nil || s.next == nil {
		return false
	}
	span, ok, err := s.next()
	if err != nil {
		s.err = err
		return false
	}
	if !ok {
		s.next = nil
		return false
	}
	s.span = span
	return true
}

// Span returns the span found by the last successful Scan.
func (s *Stream) Span() Span {
	return s.span
}

// Err returns the first error encountered while scanning, if any.
func (s *Stream) Err() error {
	return s.err
}

// literalNext scans for an exact substring with strings.Index, never
// re-visiting consumed text. Matches do not overlap: the scan resumes
// after the end of each match. Normalization guarantees lit is non-empty.
func literalNext(text, lit string) func() (Span, bool, error) {
	pos := 0
	return func() (Span, bool, error) {
		idx := strings.Index(text[pos:], lit)
		if idx < 0 {
			return Span{}, false, nil
		}
		span := Span{
			Preceding: text[pos : pos+idx],
			Matched:   lit,
		}
		pos += idx + len(lit)
		return span, true, nil
	}
}

// regexNext iterates matches the way the engine exposes them:
// FindStringMatch, then FindNextMatch for each subsequent occurrence.
// Match indices are in codepoints, so a running byte position is carried
// alongside to slice the original text. After a zero-width match the
// engine resumes one codepoint further; the skipped codepoint lands in
// the next span's Preceding.
func regexNext(text string, re *regexp2.Regexp) func() (Span, bool, error) {
	var (
		m       *regexp2.Match
		started bool
		bytePos int // byte offset corresponding to runePos
		runePos int // codepoints consumed so far
	)
	return func() (Span, bool, error) {
		var err error
		if !started {
			started = true
			m, err = re.FindStringMatch(text)
		} else {
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			return Span{}, false, err
		}
		if m == nil {
			return Span{}, false, nil
		}
		start := byteOffset(text, bytePos, runePos, m.Index)
		matched := m.String()
		span := Span{
			Preceding: text[bytePos:start],
			Matched:   matched,
		}
		bytePos = start + len(matched)
		runePos = m.Index + m.Length
		return span, true, nil
	}
}

// byteOffset resolves the codepoint index target to a byte offset,
// resuming from a known (bytePos, runePos) pair so the whole scan stays
// a single forward pass.
func byteOffset(text string, bytePos, runePos, target int) int {
	for runePos < target {
		_, size := utf8.DecodeRuneInString(text[bytePos:])
		bytePos += size
		runePos++
	}
	return bytePos
}
