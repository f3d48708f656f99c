package quantity

// A rate is stored as dependent units per independent unit, both canonical.
// Composition only type checks when the shared unit cancels; there is no
// runtime unit check anywhere.

// RateOf builds the rate dependent / independent.
//
//	speed := quantity.RateOf(length.Meters(10), duration.Seconds(2)) // 5 m/s
func RateOf[A, B Unit](dependent Quantity[A], independent Quantity[B]) Quantity[Rate[A, B]] {
	return Quantity[Rate[A, B]]{raw: dependent.raw / independent.raw}
}

// Per is RateOf with the arguments swapped, reading as "dependent per
// independent" when the independent value is known first.
func Per[A, B Unit](independent Quantity[B], dependent Quantity[A]) Quantity[Rate[A, B]] {
	return RateOf(dependent, independent)
}

// At evaluates a rate for an independent value: distance at a speed for a
// duration.
func At[A, B Unit](rate Quantity[Rate[A, B]], independent Quantity[B]) Quantity[A] {
	return Quantity[A]{raw: rate.raw * independent.raw}
}

// AtInverse solves a rate for the independent value: the duration needed to
// cover a distance at a speed.
func AtInverse[A, B Unit](rate Quantity[Rate[A, B]], dependent Quantity[A]) Quantity[B] {
	return Quantity[B]{raw: dependent.raw / rate.raw}
}

// For is At with the arguments swapped.
func For[A, B Unit](independent Quantity[B], rate Quantity[Rate[A, B]]) Quantity[A] {
	return At(rate, independent)
}

// Inverse flips a rate: seconds per meter from meters per second.
func Inverse[A, B Unit](rate Quantity[Rate[A, B]]) Quantity[Rate[B, A]] {
	return Quantity[Rate[B, A]]{raw: 1 / rate.raw}
}

// RateProduct chains two rates sharing the unit B, which cancels.
func RateProduct[A, B, C Unit](first Quantity[Rate[A, B]], second Quantity[Rate[B, C]]) Quantity[Rate[A, C]] {
	return Quantity[Rate[A, C]]{raw: first.raw * second.raw}
}
