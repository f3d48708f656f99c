// Package quantity implements dimensionally tagged scalars.
//
// A Quantity[U] is a float64 stored in the canonical unit of the family
// described by the tag U. The tag is a zero-size type parameter, so a length
// and a duration are different Go types and cannot be added by accident,
// while the runtime representation stays a single float.
//
// Equality, ordering and hashing are tolerance based; see Precision.
package quantity

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Quantity is an immutable value of unit U.
type Quantity[U Unit] struct {
	raw float64
}

// FromRaw wraps a value already expressed in the canonical unit of U.
// It performs no conversion.
func FromRaw[U Unit](raw float64) Quantity[U] {
	return Quantity[U]{raw: raw}
}

// Raw returns the value in the canonical unit of U.
func (q Quantity[U]) Raw() float64 {
	return q.raw
}

func Zero[U Unit]() Quantity[U] {
	return Quantity[U]{}
}

func Infinity[U Unit]() Quantity[U] {
	return Quantity[U]{raw: math.Inf(1)}
}

func NegativeInfinity[U Unit]() Quantity[U] {
	return Quantity[U]{raw: math.Inf(-1)}
}

func NaN[U Unit]() Quantity[U] {
	return Quantity[U]{raw: math.NaN()}
}

// Float builds a unitless quantity from any float type.
func Float[T constraints.Float](v T) Quantity[Unitless] {
	return Quantity[Unitless]{raw: float64(v)}
}

// ToFloat unwraps a unitless quantity.
func ToFloat(q Quantity[Unitless]) float64 {
	return q.raw
}

// IsNaN reports whether q is not a number. It bypasses tolerant equality.
func (q Quantity[U]) IsNaN() bool {
	return math.IsNaN(q.raw)
}

// IsInfinite reports whether q is positive or negative infinity.
func (q Quantity[U]) IsInfinite() bool {
	return math.IsInf(q.raw, 0)
}

// IsZero reports whether q equals zero within tolerance.
func (q Quantity[U]) IsZero() bool {
	return q.Equal(Quantity[U]{})
}

func (q Quantity[U]) Plus(other Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: q.raw + other.raw}
}

func (q Quantity[U]) Minus(other Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: q.raw - other.raw}
}

func (q Quantity[U]) Negate() Quantity[U] {
	return Quantity[U]{raw: -q.raw}
}

// Multiply scales q by a plain factor.
func (q Quantity[U]) Multiply(factor float64) Quantity[U] {
	return Quantity[U]{raw: q.raw * factor}
}

// Divide scales q by the inverse of a plain divisor. Division by zero
// follows IEEE rules.
func (q Quantity[U]) Divide(divisor float64) Quantity[U] {
	return Quantity[U]{raw: q.raw / divisor}
}

func (q Quantity[U]) Half() Quantity[U] {
	return Quantity[U]{raw: q.raw * 0.5}
}

func (q Quantity[U]) Twice() Quantity[U] {
	return Quantity[U]{raw: q.raw * 2}
}

// Ratio returns q / other as a plain number; the units cancel.
func (q Quantity[U]) Ratio(other Quantity[U]) float64 {
	return q.raw / other.raw
}

// String renders the canonical value followed by the unit symbol.
func (q Quantity[U]) String() string {
	var u U
	value := strconv.FormatFloat(q.raw, 'g', -1, 64)
	if symbol := u.Symbol(); symbol != "" {
		return value + " " + symbol
	}
	return value
}
