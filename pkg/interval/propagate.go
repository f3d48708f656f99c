package interval

import (
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
)

func (i Interval[U]) Negate() Interval[U] {
	return Interval[U]{min: i.max.Negate(), max: i.min.Negate()}
}

func (i Interval[U]) Plus(q quantity.Quantity[U]) Interval[U] {
	return Interval[U]{min: i.min.Plus(q), max: i.max.Plus(q)}
}

func (i Interval[U]) PlusInterval(other Interval[U]) Interval[U] {
	return Interval[U]{min: i.min.Plus(other.min), max: i.max.Plus(other.max)}
}

func (i Interval[U]) Minus(q quantity.Quantity[U]) Interval[U] {
	return Interval[U]{min: i.min.Minus(q), max: i.max.Minus(q)}
}

// MinusInterval bounds x - y for x in i and y in other.
func (i Interval[U]) MinusInterval(other Interval[U]) Interval[U] {
	return Interval[U]{min: i.min.Minus(other.max), max: i.max.Minus(other.min)}
}

// Difference bounds q - x for x in i.
func (i Interval[U]) Difference(q quantity.Quantity[U]) Interval[U] {
	return Interval[U]{min: q.Minus(i.max), max: q.Minus(i.min)}
}

func (i Interval[U]) MultiplyBy(factor float64) Interval[U] {
	return From(i.min.Multiply(factor), i.max.Multiply(factor))
}

func (i Interval[U]) DivideBy(divisor float64) Interval[U] {
	return From(i.min.Divide(divisor), i.max.Divide(divisor))
}

func (i Interval[U]) Half() Interval[U] { return i.MultiplyBy(0.5) }

func (i Interval[U]) Twice() Interval[U] { return i.MultiplyBy(2) }

// Abs bounds |x| for x in i.
func (i Interval[U]) Abs() Interval[U] {
	lo, hi := i.min.Raw(), i.max.Raw()
	switch {
	case lo >= 0:
		return i
	case hi <= 0:
		return i.Negate()
	default:
		return fromRaw[U](0, math.Max(-lo, hi))
	}
}

// Times bounds x*q for x in i.
func Times[A, B quantity.Unit](i Interval[A], q quantity.Quantity[B]) Interval[quantity.Product[A, B]] {
	return From(quantity.Times(i.min, q), quantity.Times(i.max, q))
}

// Product bounds q*x for x in i.
func Product[A, B quantity.Unit](q quantity.Quantity[A], i Interval[B]) Interval[quantity.Product[A, B]] {
	return From(quantity.Times(q, i.min), quantity.Times(q, i.max))
}

// TimesInterval bounds x*y for x in i and y in j.
func TimesInterval[A, B quantity.Unit](i Interval[A], j Interval[B]) Interval[quantity.Product[A, B]] {
	lo, hi := productBounds(i.min.Raw(), i.max.Raw(), j.min.Raw(), j.max.Raw())
	return fromRaw[quantity.Product[A, B]](lo, hi)
}

// TimesUnitless scales i by a dimensionless factor.
func TimesUnitless[U quantity.Unit](i Interval[U], factor quantity.Quantity[quantity.Unitless]) Interval[U] {
	return i.MultiplyBy(quantity.ToFloat(factor))
}

// TimesUnitlessInterval bounds f*x for x in i and f in factor.
func TimesUnitlessInterval[U quantity.Unit](i Interval[U], factor Interval[quantity.Unitless]) Interval[U] {
	lo, hi := productBounds(i.min.Raw(), i.max.Raw(), factor.min.Raw(), factor.max.Raw())
	return fromRaw[U](lo, hi)
}

func productBounds(a, b, c, d float64) (float64, float64) {
	ac, ad, bc, bd := a*c, a*d, b*c, b*d
	return min(ac, ad, bc, bd), max(ac, ad, bc, bd)
}

// Square bounds x² for x in i; the result is never negative.
func Square[U quantity.Unit](i Interval[U]) Interval[quantity.Squared[U]] {
	a := i.Abs()
	return Interval[quantity.Squared[U]]{min: quantity.Square(a.min), max: quantity.Square(a.max)}
}

func SquareUnitless(i Interval[quantity.Unitless]) Interval[quantity.Unitless] {
	a := i.Abs()
	return Interval[quantity.Unitless]{min: quantity.SquareUnitless(a.min), max: quantity.SquareUnitless(a.max)}
}

// Cube bounds x³ for x in i. Cubing is monotonic so the endpoints map
// directly.
func Cube[U quantity.Unit](i Interval[U]) Interval[quantity.Cubed[U]] {
	return Interval[quantity.Cubed[U]]{min: quantity.Cube(i.min), max: quantity.Cube(i.max)}
}

func CubeUnitless(i Interval[quantity.Unitless]) Interval[quantity.Unitless] {
	return Interval[quantity.Unitless]{min: quantity.CubeUnitless(i.min), max: quantity.CubeUnitless(i.max)}
}
