// Package sublocator locates every occurrence of a pattern in a text
// blob and reports each occurrence's position as a 1-based line:col
// pair, columns counted in Unicode codepoints.
//
// Patterns come in three kinds: a single literal string, an ordered set
// of literal strings, or a compiled regular expression. Results arrive
// in document order (top-to-bottom, left-to-right), may be capped to the
// first N occurrences, and may be restricted to occurrences at or after
// a starting position. Regular expressions are matched over the whole
// input, so a pattern containing a line-terminator class can match
// across line boundaries.
//
// # Basic Usage
//
//	locs, err := sublocator.Locate(doc, sublocator.Literal("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, loc := range locs {
//	    fmt.Printf("found at %s\n", loc)
//	}
//
// # Bounded Search
//
// A capped request scans only as far as needed to satisfy the cap:
//
//	locs, err := sublocator.Locate(doc, sublocator.Literals{"cat", "dog"},
//	    sublocator.WithAtMost(5),
//	    sublocator.WithStart(sublocator.Location{Line: 40, Col: 1}))
//
// # Regular Expressions
//
//	re := regexp2.MustCompile(`</?p>`, 0)
//	matches, err := sublocator.Find(doc, sublocator.Regexp(re))
package sublocator

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/bhdirect-ebooks/sublocator/pkg/matcher"
	"github.com/bhdirect-ebooks/sublocator/pkg/pattern"
	"github.com/bhdirect-ebooks/sublocator/pkg/types"
)

// Re-export commonly used types for convenience. Users can import just
// "github.com/bhdirect-ebooks/sublocator" without subpackages.
type (
	// Location is a 1-based line:col position in text.
	Location = types.Location

	// OffsetSpan is a half-open byte range within the input.
	OffsetSpan = types.OffsetSpan

	// Match is a single located occurrence with its text, byte offsets
	// and begin/end positions.
	Match = types.Match

	// Snippet contains context around a match.
	Snippet = types.Snippet

	// Pattern is the search target.
	Pattern = pattern.Pattern

	// Literal matches an exact substring.
	Literal = pattern.Literal

	// Literals matches any of an ordered set of exact substrings; the
	// earlier item wins when two could match at the same offset.
	Literals = pattern.Literals
)

// DocStart is the sentinel "beginning of document" location, the default
// starting point. It sorts before every real location.
var DocStart = types.DocStart

// Unbounded removes the occurrence cap. It is the default.
const Unbounded = -1

// Regexp wraps a caller-compiled regexp2 pattern. The caller is
// responsible for the pattern's validity; compilation errors surface at
// compile time, not here.
func Regexp(re *regexp2.Regexp) Pattern {
	return pattern.Regexp{Re: re}
}

// config holds per-call search settings.
type config struct {
	atMost       int
	start        Location
	contextLines int
	timeout      time.Duration
}

// Option configures a search.
type Option func(*config)

// WithAtMost caps the number of occurrences returned. The scan stops as
// soon as the cap is satisfied rather than finding every match and
// truncating. Pass Unbounded (or omit the option) for no cap; any other
// non-positive value fails with ErrInvalidAtMost.
func WithAtMost(n int) Option {
	return func(c *config) {
		c.atMost = n
	}
}

// WithStart restricts results to occurrences beginning at or after
// start: on a later line, or on the same line at a column >= start.Col.
// Malformed locations fail with ErrInvalidStart.
func WithStart(start Location) Option {
	return func(c *config) {
		c.start = start
	}
}

// WithContextLines sets the number of context lines captured around each
// match in Match.Snippet. Default is none.
func WithContextLines(lines int) Option {
	return func(c *config) {
		c.contextLines = lines
	}
}

// WithMatchTimeout bounds scan time for the alternation compiled from a
// literal set. Default is 5 seconds; zero disables the bound.
// Caller-compiled regexps keep their own MatchTimeout.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// newConfig applies opts and validates the result.
func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		atMost:  Unbounded,
		start:   DocStart,
		timeout: pattern.DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.atMost != Unbounded && cfg.atMost < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAtMost, cfg.atMost)
	}
	if !cfg.start.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidStart, cfg.start)
	}
	return cfg, nil
}

// Locate returns the begin location of every occurrence of p in text, in
// document order. Locations within one result are strictly increasing.
//
// Example:
//
//	locs, err := sublocator.Locate("ab ba ab", sublocator.Literal("ab"))
//	// locs == []Location{{1, 1}, {1, 7}}
func Locate(text string, p Pattern, opts ...Option) ([]Location, error) {
	matches, err := Find(text, p, opts...)
	if err != nil {
		return nil, err
	}
	locs := make([]Location, len(matches))
	for i, m := range matches {
		locs[i] = m.Begin
	}
	return locs, nil
}

// Find is Locate with full occurrence records: matched text, byte
// offsets, begin and end positions, and optional context snippets.
func Find(text string, p Pattern, opts ...Option) ([]*Match, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	compiled, err := pattern.Normalize(p, cfg.timeout)
	if err != nil {
		return nil, err
	}

	// Cheap whole-text reject for literal sets. Only worthwhile when the
	// scan is unbounded anyway: a capped request must not pay for a full
	// pass over the input.
	if cfg.atMost == Unbounded {
		if pf := compiled.Prefilter(); pf != nil && !pf.MaybeContains(text) {
			return []*Match{}, nil
		}
	}

	stream := matcher.New(text, compiled)
	cursor := types.StartCursor()
	bytePos := 0
	matches := []*Match{}

	for stream.Scan() {
		span := stream.Span()
		cursor = cursor.Advance(span.Preceding)
		begin := cursor.Location()
		cursor = cursor.Advance(span.Matched)

		startByte := bytePos + len(span.Preceding)
		endByte := startByte + len(span.Matched)
		bytePos = endByte

		if !begin.AtOrAfter(cfg.start) {
			continue
		}

		m := &Match{
			Text:   span.Matched,
			Offset: OffsetSpan{Start: startByte, End: endByte},
			Begin:  begin,
			End:    cursor.Location(),
		}
		if cfg.contextLines > 0 {
			before, after := matcher.ExtractContext(text, startByte, endByte, cfg.contextLines)
			m.Snippet = &Snippet{Before: before, Matching: span.Matched, After: after}
		}
		matches = append(matches, m)

		if cfg.atMost != Unbounded && len(matches) == cfg.atMost {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// Count returns the number of occurrences of p in text under the same
// options as Locate.
func Count(text string, p Pattern, opts ...Option) (int, error) {
	locs, err := Locate(text, p, opts...)
	if err != nil {
		return 0, err
	}
	return len(locs), nil
}

// LocateValue is Locate for dynamically typed payloads, such as values
// decoded into any. It accepts string and []byte text; anything else
// fails with ErrNotAText.
func LocateValue(text any, p Pattern, opts ...Option) ([]Location, error) {
	switch v := text.(type) {
	case string:
		return Locate(v, p, opts...)
	case []byte:
		return Locate(string(v), p, opts...)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotAText, text)
	}
}
