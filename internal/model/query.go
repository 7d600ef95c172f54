package model

import (
	"math"
	"strings"
)

const (
	DefaultPageNumber  = 1
	DefaultPageSize    = 10
	DefaultMaxPageSize = 15
)

// Page is a clamped pagination window. Build it with NewPage.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps the requested window: numbers below 1 become 1, sizes
// below 1 fall back to DefaultPageSize and sizes above maxSize become
// maxSize. A maxSize below 1 means DefaultMaxPageSize. Numbers are capped
// so that Offset always fits in an int.
func NewPage(number, size, maxSize int) Page {
	if maxSize < 1 {
		maxSize = DefaultMaxPageSize
	}
	if number < 1 {
		number = DefaultPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > maxSize {
		size = maxSize
	}
	if last := math.MaxInt/size + 1; number > last {
		number = last
	}
	return Page{Number: number, Size: size}
}

// Offset is the number of items skipped before this page.
// It saturates at math.MaxInt instead of wrapping.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// descendingByID reports whether the listing falls back to id order,
// newest first: no sort field named and descending requested.
func descendingByID(sortBy string, desc bool) bool {
	return desc && strings.TrimSpace(sortBy) == ""
}

func lookupSortField[F ~string](fields map[string]F, name string) (F, bool) {
	f, ok := fields[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}
