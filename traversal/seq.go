// SPDX-License-Identifier: MIT
// File: seq.go
// Role: Generic lazy-sequence combinators used by every traversal step.
// Determinism:
//   - All combinators preserve input order.
// Notes:
//   - Nothing here evaluates eagerly; each function only wraps its input.

package traversal

import "iter"

// filter yields the items of seq for which keep returns true.
func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// flatMap yields, for every item of seq, the items of expand(item), in order.
func flatMap[T, U any](seq iter.Seq[T], expand func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			for u := range expand(v) {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// mapSeq yields conv(item) for every item of seq where conv reports ok.
func mapSeq[T, U any](seq iter.Seq[T], conv func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			u, ok := conv(v)
			if ok && !yield(u) {
				return
			}
		}
	}
}

// take yields at most n items of seq.
func take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// dedupBy yields the first item for every distinct key.
// The seen-set is rebuilt on every iteration, keeping the sequence restartable.
func dedupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// concat yields every item of a, then every item of b.
func concat[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range a {
			if !yield(v) {
				return
			}
		}
		for v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// count drains seq and returns the number of items.
func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// first returns the first item of seq.
func first[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// toList drains seq into a slice.
func toList[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// empty never yields.
func empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}
