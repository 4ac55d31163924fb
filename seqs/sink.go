package seqs

import "iter"

// First pulls a single element. On a single-pass generator the element is consumed.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// All reports whether every element satisfies predicate. It stops at the
// first failure, so an unbounded seq must be bounded first.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Distinct reports whether no element repeats.
func Distinct[T comparable](seq iter.Seq[T]) bool {
	seen := make(map[T]struct{})
	for v := range seq {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
