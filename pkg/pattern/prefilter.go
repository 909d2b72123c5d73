package pattern

import "github.com/cloudflare/ahocorasick"

// Prefilter uses Aho-Corasick to answer whether any literal-set item
// occurs in content at all. A miss lets callers skip regex scanning
// entirely; a hit proves nothing about positions.
type Prefilter struct {
	matcher *ahocorasick.Matcher
}

// Prefilter builds a prefilter for c, or nil when c did not come from a
// literal set.
func (c *Compiled) Prefilter() *Prefilter {
	if len(c.items) == 0 {
		return nil
	}
	return &Prefilter{matcher: ahocorasick.NewStringMatcher(c.items)}
}

// MaybeContains reports whether any item occurs in text. It scans the
// whole text, so it pays off only when the subsequent scan would be
// unbounded anyway.
func (p *Prefilter) MaybeContains(text string) bool {
	return len(p.matcher.Match([]byte(text))) > 0
}
