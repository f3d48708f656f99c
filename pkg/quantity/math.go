package quantity

import "math"

func (q Quantity[U]) Abs() Quantity[U] {
	return Quantity[U]{raw: math.Abs(q.raw)}
}

// Sign returns -1, 0 or +1; values within tolerance of zero report 0.
func (q Quantity[U]) Sign() int {
	return q.Compare(Quantity[U]{})
}

// Floor, Ceil, Round and Truncate operate on the canonical value.

func (q Quantity[U]) Floor() Quantity[U] {
	return Quantity[U]{raw: math.Floor(q.raw)}
}

func (q Quantity[U]) Ceil() Quantity[U] {
	return Quantity[U]{raw: math.Ceil(q.raw)}
}

func (q Quantity[U]) Round() Quantity[U] {
	return Quantity[U]{raw: math.Round(q.raw)}
}

func (q Quantity[U]) Truncate() Quantity[U] {
	return Quantity[U]{raw: math.Trunc(q.raw)}
}

// RoundTo rounds the canonical value to the given number of decimal digits.
// Negative digits round to tens, hundreds and so on. A value that already
// carries no more digits than requested is returned unchanged, and rounding
// to more tens than float64 can represent gives zero.
func (q Quantity[U]) RoundTo(digits int) Quantity[U] {
	scale := math.Pow10(digits)
	if scale == 0 {
		return Quantity[U]{}
	}
	scaled := q.raw * scale
	if math.IsInf(scale, 0) || math.IsInf(scaled, 0) || math.Abs(scaled) >= 1<<53 {
		return q
	}
	return Quantity[U]{raw: math.Round(scaled) / scale}
}

// ModBy returns q modulo modulus using floored division: the result has the
// sign of the modulus, so (-13.5).ModBy(4) is 2.5.
func (q Quantity[U]) ModBy(modulus Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: q.raw - modulus.raw*math.Floor(q.raw/modulus.raw)}
}

// RemainderBy returns the remainder of q divided by modulus using truncated
// division: the result has the sign of q, so (-13.5).RemainderBy(4) is -1.5.
func (q Quantity[U]) RemainderBy(modulus Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: math.Mod(q.raw, modulus.raw)}
}

// Clamp limits q to the range spanned by low and high. The bounds may be
// given in either order.
func (q Quantity[U]) Clamp(low, high Quantity[U]) Quantity[U] {
	if high.raw < low.raw {
		low, high = high, low
	}
	return Quantity[U]{raw: math.Max(low.raw, math.Min(high.raw, q.raw))}
}

// Interpolate returns start + t*(end-start). t outside [0, 1] extrapolates.
// The formula is evaluated from the nearer endpoint so that t == 1 returns
// end exactly.
func Interpolate[U Unit](start, end Quantity[U], t float64) Quantity[U] {
	if t <= 0.5 {
		return Quantity[U]{raw: start.raw + t*(end.raw-start.raw)}
	}
	return Quantity[U]{raw: end.raw + (1-t)*(start.raw-end.raw)}
}

func Midpoint[U Unit](a, b Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: a.raw + 0.5*(b.raw-a.raw)}
}

// Times multiplies two quantities, producing the product unit.
func Times[A, B Unit](a Quantity[A], b Quantity[B]) Quantity[Product[A, B]] {
	return Quantity[Product[A, B]]{raw: a.raw * b.raw}
}

// Over divides a product by its right factor.
func Over[A, B Unit](product Quantity[Product[A, B]], b Quantity[B]) Quantity[A] {
	return Quantity[A]{raw: product.raw / b.raw}
}

// OverLeft divides a product by its left factor.
func OverLeft[A, B Unit](product Quantity[Product[A, B]], a Quantity[A]) Quantity[B] {
	return Quantity[B]{raw: product.raw / a.raw}
}

// TimesUnitless scales q by a dimensionless quantity.
func TimesUnitless[U Unit](factor Quantity[Unitless], q Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: factor.raw * q.raw}
}

// OverUnitless divides q by a dimensionless quantity.
func OverUnitless[U Unit](q Quantity[U], divisor Quantity[Unitless]) Quantity[U] {
	return Quantity[U]{raw: q.raw / divisor.raw}
}

func Square[U Unit](q Quantity[U]) Quantity[Squared[U]] {
	return Quantity[Squared[U]]{raw: q.raw * q.raw}
}

func Cube[U Unit](q Quantity[U]) Quantity[Cubed[U]] {
	return Quantity[Cubed[U]]{raw: q.raw * q.raw * q.raw}
}

// Sqrt is the inverse of Square. Negative inputs give NaN.
func Sqrt[U Unit](q Quantity[Product[U, U]]) Quantity[U] {
	return Quantity[U]{raw: math.Sqrt(q.raw)}
}

// Cbrt is the inverse of Cube.
func Cbrt[U Unit](q Quantity[Product[Product[U, U], U]]) Quantity[U] {
	return Quantity[U]{raw: math.Cbrt(q.raw)}
}

func SquareUnitless(q Quantity[Unitless]) Quantity[Unitless] {
	return Quantity[Unitless]{raw: q.raw * q.raw}
}

func CubeUnitless(q Quantity[Unitless]) Quantity[Unitless] {
	return Quantity[Unitless]{raw: q.raw * q.raw * q.raw}
}

func SqrtUnitless(q Quantity[Unitless]) Quantity[Unitless] {
	return Quantity[Unitless]{raw: math.Sqrt(q.raw)}
}

func CbrtUnitless(q Quantity[Unitless]) Quantity[Unitless] {
	return Quantity[Unitless]{raw: math.Cbrt(q.raw)}
}
