// Package seq supplies the lazy-sequence combinators that every
// step-iterator in this library is built from: a k-way sorted merge
// with deduplication, a take-while truncation, map, filter and
// prepend. The brute-force step derivation lives in the arrival
// package (arrival.BruteForceSteps).
//
// Sequences are expressed as the standard library's iter.Seq[T]
// (range-over-func, Go 1.23+) rather than a hand-rolled interface:
// it is the idiomatic Go analogue of a lazy, possibly-infinite,
// cheap-to-advance Rust Iterator, and nothing in the example corpus
// offers a narrower-purpose alternative (see DESIGN.md).
package seq

import (
	"container/heap"
	"iter"
)

// Of adapts a plain slice into a finite iter.Seq.
func Of[T any](xs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Map transforms every element of s with f, lazily.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range s {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Filter keeps only the elements of s for which keep returns true.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if keep(x) {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// TakeWhile yields elements of s until pred first returns false, then
// stops (the failing element is not yielded).
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if !pred(x) {
				return
			}
			if !yield(x) {
				return
			}
		}
	}
}

// Prepend yields x followed by the elements of s.
func Prepend[T any](x T, s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(x) {
			return
		}
		for y := range s {
			if !yield(y) {
				return
			}
		}
	}
}

// ordered is the subset of comparable types Merge requires.
type ordered interface {
	~int | ~int64 | ~uint64 | ~float64
}

// Merge performs a k-way sorted merge of already-sorted,
// non-decreasing sequences into a single non-decreasing sequence.
// Merge does not deduplicate; compose with Dedup when needed.
func Merge[T ordered](sources ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		h := &mergeHeap[T]{}
		for _, s := range sources {
			next, stop := iter.Pull(s)
			defer stop()
			if v, ok := next(); ok {
				heap.Push(h, entry[T]{v, next})
			}
		}
		for h.Len() > 0 {
			top := heap.Pop(h).(entry[T])
			if !yield(top.val) {
				return
			}
			if v, ok := top.next(); ok {
				heap.Push(h, entry[T]{v, top.next})
			}
		}
	}
}

type entry[T ordered] struct {
	val  T
	next func() (T, bool)
}

type mergeHeap[T ordered] []entry[T]

func (h mergeHeap[T]) Len() int            { return len(h) }
func (h mergeHeap[T]) Less(i, j int) bool  { return h[i].val < h[j].val }
func (h mergeHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }
func (h *mergeHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Dedup collapses consecutive equal elements of a non-decreasing
// sequence, mirroring itertools::dedup applied after a sorted merge.
func Dedup[T comparable](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		var last T
		for x := range s {
			if first || x != last {
				if !yield(x) {
					return
				}
				last = x
				first = false
			}
		}
	}
}

// Collect materializes at most limit elements of s into a slice. It
// stops once limit elements are collected, so s may be infinite.
func Collect[T any](s iter.Seq[T], limit int) []T {
	out := make([]T, 0, limit)
	for x := range s {
		if len(out) >= limit {
			break
		}
		out = append(out, x)
	}
	return out
}
