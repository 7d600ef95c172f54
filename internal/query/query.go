// Package query filters, sorts and paginates in-memory entity slices.
//
// The order of operations is fixed: filter, then sort, then paginate.
// Inputs are never modified; every function returns a new slice.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// Predicate reports whether an item is kept by a filter.
type Predicate[T any] func(T) bool

// Compare orders two items, negative when a sorts before b.
type Compare[T any] func(a, b T) int

// Filter keeps the items that satisfy every predicate. Nil predicates are
// skipped.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Sort returns a stably sorted copy of items. With desc the ordering is
// reversed while equal items keep their relative order.
func Sort[T any](items []T, by Compare[T], desc bool) []T {
	out := slices.Clone(items)
	if by == nil {
		return out
	}
	if desc {
		slices.SortStableFunc(out, func(a, b T) int { return by(b, a) })
	} else {
		slices.SortStableFunc(out, by)
	}
	return out
}

// Paginate returns the window described by p. Windows past the end are
// empty.
func Paginate[T any](items []T, p model.Page) []T {
	if p.Size < 1 {
		return []T{}
	}
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+p.Size, len(items))
	return slices.Clone(items[start:end])
}

// Contains is a case-insensitive substring predicate. An empty needle
// yields a nil predicate, which Filter ignores.
func Contains[T any](needle string, field func(T) string) Predicate[T] {
	if needle == "" {
		return nil
	}
	needle = strings.ToLower(needle)
	return func(it T) bool {
		return strings.Contains(strings.ToLower(field(it)), needle)
	}
}

// Equals keeps items whose field matches *want. A nil want yields a nil
// predicate.
func Equals[T any, V comparable](want *V, field func(T) V) Predicate[T] {
	if want == nil {
		return nil
	}
	v := *want
	return func(it T) bool { return field(it) == v }
}

// By orders items by an ordered key. Strings compare byte-wise.
func By[T any, K cmp.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ByBool orders false before true.
func ByBool[T any](key func(T) bool) Compare[T] {
	return func(a, b T) int {
		x, y := key(a), key(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
}
