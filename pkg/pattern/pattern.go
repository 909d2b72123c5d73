// Package pattern defines the search pattern variants and normalizes
// them into a compiled form ready for matching.
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrPattern is returned when a pattern cannot be normalized.
var ErrPattern = errors.New("invalid pattern")

// DefaultMatchTimeout bounds regex scan time to guard against
// catastrophic backtracking in caller-supplied patterns.
const DefaultMatchTimeout = 5 * time.Second

// Pattern is the search target: a single literal string, an ordered set
// of literal strings, or a compiled regular expression.
type Pattern interface {
	pattern()
}

// Literal matches an exact substring. Matching is plain substring
// search, never regex, so metacharacters have no special meaning.
type Literal string

// Literals matches any of an ordered set of exact substrings. When two
// items could match at the same offset, the earlier item wins.
type Literals []string

// Regexp matches a caller-compiled regular expression. Matching is
// global over the whole input, so a pattern containing a line-terminator
// class can match across line boundaries.
type Regexp struct {
	Re *regexp2.Regexp
}

func (Literal) pattern()  {}
func (Literals) pattern() {}
func (Regexp) pattern()   {}

// Compiled is a normalized pattern. Exactly one of Lit or Re is set.
type Compiled struct {
	Lit string          // exact-substring search target
	Re  *regexp2.Regexp // compiled regex

	items []string // original literal-set items, kept for prefiltering
}

// Normalize validates p and produces its compiled form.
//
// A Literals set is escaped item by item and joined into a single
// alternation in caller order; because regex alternation is
// leftmost-first, the item appearing earlier wins when two items could
// match at the same offset. The caller's slice is never reordered or
// mutated.
//
// Empty patterns are rejected: a literal or set item that is the empty
// string would match at every position and carries no location
// information. Zero-width matches from a caller-supplied regex are
// instead stepped past one codepoint at a time during scanning.
func Normalize(p Pattern, timeout time.Duration) (*Compiled, error) {
	switch p := p.(type) {
	case Literal:
		if p == "" {
			return nil, fmt.Errorf("%w: empty literal", ErrPattern)
		}
		return &Compiled{Lit: string(p)}, nil

	case Literals:
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: empty literal set", ErrPattern)
		}
		escaped := make([]string, len(p))
		for i, item := range p {
			if item == "" {
				return nil, fmt.Errorf("%w: literal set item %d is empty", ErrPattern, i)
			}
			escaped[i] = regexp2.Escape(item)
		}
		re, err := regexp2.Compile(strings.Join(escaped, "|"), regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w: compiling literal alternation: %v", ErrPattern, err)
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return &Compiled{Re: re, items: append([]string(nil), p...)}, nil

	case Regexp:
		if p.Re == nil {
			return nil, fmt.Errorf("%w: nil regexp", ErrPattern)
		}
		return &Compiled{Re: p.Re}, nil

	case nil:
		return nil, fmt.Errorf("%w: nil pattern", ErrPattern)

	default:
		return nil, fmt.Errorf("%w: unsupported pattern type %T", ErrPattern, p)
	}
}
