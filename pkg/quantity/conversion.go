package quantity

// Conversion maps a named unit onto the canonical unit of its family with a
// pure scale factor: canonical = value * factor. Affine scales such as
// absolute temperatures are deliberately not expressible here.
type Conversion[U Unit] struct {
	factor float64
}

// NewConversion declares a unit worth factor canonical units.
func NewConversion[U Unit](factor float64) Conversion[U] {
	return Conversion[U]{factor: factor}
}

// Into builds a quantity from a value in this unit.
func (c Conversion[U]) Into(value float64) Quantity[U] {
	return Quantity[U]{raw: value * c.factor}
}

// OutOf expresses q in this unit.
func (c Conversion[U]) OutOf(q Quantity[U]) float64 {
	return q.raw / c.factor
}

// Factor returns how many canonical units one of this unit is worth.
func (c Conversion[U]) Factor() float64 {
	return c.factor
}

// RateConversion derives the conversion of a rate from the conversions of
// its parts, e.g. kilometers per hour from kilometers and hours.
func RateConversion[A, B Unit](dependent Conversion[A], independent Conversion[B]) Conversion[Rate[A, B]] {
	return Conversion[Rate[A, B]]{factor: dependent.factor / independent.factor}
}

// ProductConversion derives the conversion of a product unit, e.g.
// foot-pounds from feet and pounds-force.
func ProductConversion[A, B Unit](a Conversion[A], b Conversion[B]) Conversion[Product[A, B]] {
	return Conversion[Product[A, B]]{factor: a.factor * b.factor}
}

func SquaredConversion[U Unit](c Conversion[U]) Conversion[Squared[U]] {
	return Conversion[Squared[U]]{factor: c.factor * c.factor}
}

func CubedConversion[U Unit](c Conversion[U]) Conversion[Cubed[U]] {
	return Conversion[Cubed[U]]{factor: c.factor * c.factor * c.factor}
}
