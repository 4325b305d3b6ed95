package jsni

import (
	"errors"
	"strings"
)

// Markers delimiting a JavaScript block inside a native method body.
// They double as Java block comments, so a plain Java compiler ignores
// the implementation.
const (
	BlockStart = "/*-{"
	BlockEnd   = "}-*/"
)

var (
	// ErrNoBlock means neither marker occurs in the body.
	ErrNoBlock = errors.New("no javascript block")
	// ErrMissingStart means an end marker occurs without a start marker.
	ErrMissingStart = errors.New("missing start of javascript block")
	// ErrMissingEnd means a start marker is never closed.
	ErrMissingEnd = errors.New("missing end of javascript block")
)

// Interval is a half-open byte range into the text it was found in.
type Interval struct {
	Start int
	End   int
}

// FindBlock locates the JavaScript block in a method body slice and
// returns the interval between the markers, relative to body. The
// block runs from the first start marker to the last end marker after
// it, so marker lookalikes inside the fragment extend the block rather
// than cutting it short.
func FindBlock(body string) (Interval, error) {
	start := strings.Index(body, BlockStart)
	if start < 0 {
		if strings.Contains(body, BlockEnd) {
			return Interval{}, ErrMissingStart
		}
		return Interval{}, ErrNoBlock
	}
	from := start + len(BlockStart)
	end := strings.LastIndex(body[from:], BlockEnd)
	if end < 0 {
		return Interval{}, ErrMissingEnd
	}
	return Interval{Start: from, End: from + end}, nil
}
