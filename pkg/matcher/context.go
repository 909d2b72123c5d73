package matcher

import "strings"

// ExtractContext extracts up to lines lines of text before and after a
// match bounded by the byte offsets [start, end). The matched text
// itself is not duplicated in either side. Out-of-range bounds yield
// empty context.
func ExtractContext(text string, start, end, lines int) (before, after string) {
	if lines <= 0 {
		return "", ""
	}
	if start < 0 || end < start || end > len(text) {
		return "", ""
	}
	return extractBefore(text, start, lines), extractAfter(text, end, lines)
}

// extractBefore walks backward from start over lines terminators and
// returns from the start of that line up to the match.
func extractBefore(text string, start, lines int) string {
	pos := start
	for i := 0; i <= lines; i++ {
		nl := strings.LastIndex(text[:pos], "\n")
		if nl < 0 {
			// Reached start of text before finding enough lines.
			return text[:start]
		}
		if i == lines {
			return text[nl+1 : start]
		}
		pos = nl
	}
	return text[:start]
}

// extractAfter walks forward from end until lines full lines beyond the
// current one have been covered.
func extractAfter(text string, end, lines int) string {
	count := 0
	for pos := end; pos < len(text); pos++ {
		if text[pos] == '\n' {
			count++
			if count > lines {
				return text[end:pos]
			}
		}
	}
	return text[end:]
}
