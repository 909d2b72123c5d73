package sublocator

import (
	"errors"

	"github.com/bhdirect-ebooks/sublocator/pkg/pattern"
)

// Error kinds. All are detected by straight-line validation before any
// scanning begins; a failed call never returns partial results. Match
// against them with errors.Is.
var (
	// ErrNotAText is returned by LocateValue when the text argument is
	// neither a string nor a []byte.
	ErrNotAText = errors.New("text must be a string or []byte")

	// ErrInvalidAtMost is returned when an occurrence cap is neither a
	// positive integer nor Unbounded.
	ErrInvalidAtMost = errors.New("at-most cap must be a positive integer or Unbounded")

	// ErrInvalidStart is returned when a start location is malformed.
	ErrInvalidStart = errors.New("start must be a 1-based line:col location")

	// ErrPattern is returned when pattern normalization fails.
	ErrPattern = pattern.ErrPattern
)
