// Package listing holds the pure reductions behind every table and widget:
// conjunctive filters, stable non-mutating sorts and top-N cuts.
package listing

import (
	"slices"
)

// Predicate reports whether an element belongs in the result
type Predicate[T any] func(T) bool

// Compare follows the slices.SortFunc convention
type Compare[T any] func(a, b T) int

// All is the predicate that accepts everything; filters set to "all"
// resolve to it.
func All[T any](T) bool { return true }

// Filter returns the elements satisfying every predicate, in their
// original relative order. Nil predicates are ignored.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if p != nil && !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Sort returns a stably sorted copy; items is left untouched.
func Sort[T any](items []T, cmp Compare[T]) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// Then chains comparators: later ones break ties of earlier ones
func Then[T any](cmps ...Compare[T]) Compare[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Desc reverses a comparator
func Desc[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Top returns at most n leading elements as a new slice
func Top[T any](items []T, n int) []T {
	if n < len(items) {
		items = items[:n]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Recent sorts with cmp and keeps the first n
func Recent[T any](items []T, cmp Compare[T], n int) []T {
	return Top(Sort(items, cmp), n)
}

// Equals builds a predicate matching a field against a wanted value. An
// empty value or "all" disables the predicate.
func Equals[T any, V ~string](want string, field func(T) V) Predicate[T] {
	if want == "" || want == "all" {
		return nil
	}
	return func(item T) bool { return string(field(item)) == want }
}

// Distinct returns the distinct values of field in first-appearance order
func Distinct[T any, V comparable](items []T, field func(T) V) []V {
	seen := make(map[V]bool)
	var out []V
	for _, item := range items {
		v := field(item)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
