package quantity

import (
	"iter"

	"github.com/zeusync/dimension/pkg/sequence"
)

func Sum[U Unit](values []Quantity[U]) Quantity[U] {
	return SumSeq(sequence.From(values).Seq())
}

// SumSeq sums a lazy sequence of quantities.
func SumSeq[U Unit](values iter.Seq[Quantity[U]]) Quantity[U] {
	return sequence.FromSeq(values).Reduce(Quantity[U]{}, Quantity[U].Plus)
}

// Minimum returns the smallest value; false only for an empty input.
func Minimum[U Unit](values []Quantity[U]) (Quantity[U], bool) {
	return sequence.Fold1(sequence.From(values), Quantity[U].Min)
}

// Maximum returns the largest value; false only for an empty input.
func Maximum[U Unit](values []Quantity[U]) (Quantity[U], bool) {
	return sequence.Fold1(sequence.From(values), Quantity[U].Max)
}

// MinimumBy returns the first item with the smallest key.
func MinimumBy[T any, U Unit](key func(T) Quantity[U], items []T) (T, bool) {
	return sequence.MinBy(sequence.From(items), key, Quantity[U].Compare)
}

// MaximumBy returns the first item with the largest key.
func MaximumBy[T any, U Unit](key func(T) Quantity[U], items []T) (T, bool) {
	return sequence.MaxBy(sequence.From(items), key, Quantity[U].Compare)
}

// Sort returns a new slice in ascending order. The sort is stable, so values
// that are Equal keep their input order.
func Sort[U Unit](values []Quantity[U]) []Quantity[U] {
	return sequence.From(values).Sort(Quantity[U].Compare).Collect()
}

// SortBy returns a new slice ordered by the quantity extracted with key.
func SortBy[T any, U Unit](key func(T) Quantity[U], items []T) []T {
	return sequence.From(items).Sort(func(a, b T) int {
		return key(a).Compare(key(b))
	}).Collect()
}

// Range returns steps+1 evenly spaced values from start to end inclusive.
// A steps value of zero or less yields an empty slice.
func Range[U Unit](start, end Quantity[U], steps int) []Quantity[U] {
	if steps <= 0 {
		return []Quantity[U]{}
	}
	return sequence.Generate(steps+1, func(i int) Quantity[U] {
		return Interpolate(start, end, float64(i)/float64(steps))
	}).Collect()
}
