package sequence

import (
	"iter"
	"slices"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator over a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{seq: slices.Values(data)}
}

// FromSeq wraps an existing iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Generate yields fn(0), fn(1), ... fn(n-1). A non-positive n yields nothing.
func Generate[T any](n int, fn func(i int) T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for i := 0; i < n; i++ {
				if !yield(fn(i)) {
					return
				}
			}
		},
	}
}

// Seq returns the underlying sequence function for the iterator.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Collect exhausts the iterator and returns a slice of all elements.
// An empty iterator collects to an empty, non-nil slice.
func (i *Iterator[T]) Collect() []T {
	out := make([]T, 0)
	for v := range i.seq {
		out = append(out, v)
	}
	return out
}

// Sort returns a new Iterator with elements stably sorted by compare.
func (i *Iterator[T]) Sort(compare func(a, b T) int) *Iterator[T] {
	data := i.Collect()
	slices.SortStableFunc(data, compare)
	return From(data)
}

// Reduce reduces the iterator to a single value using the reducer function and initial value.
func (i *Iterator[T]) Reduce(init T, reducer func(T, T) T) T {
	return Fold(i, init, reducer)
}

// Map returns an Iterator yielding fn(v) for every element.
func Map[T, S any](it *Iterator[T], fn func(T) S) *Iterator[S] {
	return &Iterator[S]{
		seq: func(yield func(S) bool) {
			for v := range it.seq {
				if !yield(fn(v)) {
					return
				}
			}
		},
	}
}

// Fold accumulates every element into acc, left to right.
func Fold[T, A any](it *Iterator[T], acc A, fn func(A, T) A) A {
	for v := range it.seq {
		acc = fn(acc, v)
	}
	return acc
}

// Fold1 is Fold seeded with the first element. It reports false for an
// empty iterator.
func Fold1[T any](it *Iterator[T], fn func(T, T) T) (T, bool) {
	var acc T
	started := false
	for v := range it.seq {
		if !started {
			acc, started = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc, started
}

// MinBy returns the first element whose key is smallest under compare.
func MinBy[T, K any](it *Iterator[T], key func(T) K, compare func(a, b K) int) (T, bool) {
	return extremeBy(it, key, func(a, b K) bool { return compare(a, b) < 0 })
}

// MaxBy returns the first element whose key is largest under compare.
func MaxBy[T, K any](it *Iterator[T], key func(T) K, compare func(a, b K) int) (T, bool) {
	return extremeBy(it, key, func(a, b K) bool { return compare(a, b) > 0 })
}

func extremeBy[T, K any](it *Iterator[T], key func(T) K, better func(a, b K) bool) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range it.seq {
		k := key(v)
		if !found || better(k, bestKey) {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}
