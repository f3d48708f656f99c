package interval

import (
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/sequence"
)

// Hull returns the smallest interval containing every given value.
func Hull[U quantity.Unit](first quantity.Quantity[U], rest ...quantity.Quantity[U]) Interval[U] {
	return sequence.Fold(sequence.From(rest), Singleton(first), include[U])
}

// HullN is Hull over a slice; it reports false only for an empty slice.
func HullN[U quantity.Unit](values []quantity.Quantity[U]) (Interval[U], bool) {
	if len(values) == 0 {
		return Interval[U]{}, false
	}
	return Hull(values[0], values[1:]...), true
}

// HullOf is HullN over a key extracted from each item.
func HullOf[T any, U quantity.Unit](key func(T) quantity.Quantity[U], items []T) (Interval[U], bool) {
	return HullN(sequence.Map(sequence.From(items), key).Collect())
}

func Hull3[U quantity.Unit](a, b, c quantity.Quantity[U]) Interval[U] {
	return Hull(a, b, c)
}

// Aggregate returns the smallest interval containing every given interval.
func Aggregate[U quantity.Unit](first Interval[U], rest ...Interval[U]) Interval[U] {
	return sequence.Fold(sequence.From(rest), first, Interval[U].Union)
}

// AggregateN is Aggregate over a slice; it reports false only for an empty
// slice.
func AggregateN[U quantity.Unit](intervals []Interval[U]) (Interval[U], bool) {
	return sequence.Fold1(sequence.From(intervals), Interval[U].Union)
}

func AggregateOf[T any, U quantity.Unit](key func(T) Interval[U], items []T) (Interval[U], bool) {
	return AggregateN(sequence.Map(sequence.From(items), key).Collect())
}

func Aggregate3[U quantity.Unit](a, b, c Interval[U]) Interval[U] {
	return Aggregate(a, b, c)
}

func include[U quantity.Unit](acc Interval[U], q quantity.Quantity[U]) Interval[U] {
	return acc.Union(Singleton(q))
}
