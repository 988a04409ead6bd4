// Package directory filters and orders the staff list and resolves result
// lookups. Every function is pure over the records it is handed.
package directory

import "slices"

// Filter keeps the items that satisfy every predicate, preserving order.
func Filter[T any](items []T, keep ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, k := range keep {
			if !k(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// SortStable orders items in place by cmp; equal items keep their order.
// A nil cmp leaves items untouched.
func SortStable[T any](items []T, cmp func(a, b T) int) {
	if cmp == nil {
		return
	}
	slices.SortStableFunc(items, cmp)
}
