package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContext(t *testing.T) {
	text := "aaa\nbbb\nccc\nddd\neee"
	// Match covers "ccc" at bytes [8, 11).
	before, after := ExtractContext(text, 8, 11, 1)
	assert.Equal(t, "bbb\n", before)
	assert.Equal(t, "\nddd", after)
}

func TestExtractContextZeroLines(t *testing.T) {
	before, after := ExtractContext("aaa\nbbb", 4, 7, 0)
	assert.Empty(t, before)
	assert.Empty(t, after)
}

func TestExtractContextAtBoundaries(t *testing.T) {
	text := "aaa\nbbb"

	// Match at start of text: nothing before.
	before, after := ExtractContext(text, 0, 3, 2)
	assert.Empty(t, before)
	assert.Equal(t, "\nbbb", after)

	// Match at end of text: nothing after.
	before, after = ExtractContext(text, 4, 7, 2)
	assert.Equal(t, "aaa\n", before)
	assert.Empty(t, after)
}

func TestExtractContextMidLine(t *testing.T) {
	text := "aaa\nbbb\nccc"
	// Match is the middle "b": context includes the current line's
	// remainder on both sides.
	before, after := ExtractContext(text, 5, 6, 1)
	assert.Equal(t, "aaa\nb", before)
	assert.Equal(t, "b\nccc", after)
}

func TestExtractContextInvalidBounds(t *testing.T) {
	before, after := ExtractContext("abc", -1, 2, 1)
	assert.Empty(t, before)
	assert.Empty(t, after)

	before, after = ExtractContext("abc", 2, 1, 1)
	assert.Empty(t, before)
	assert.Empty(t, after)

	before, after = ExtractContext("abc", 0, 99, 1)
	assert.Empty(t, before)
	assert.Empty(t, after)
}
