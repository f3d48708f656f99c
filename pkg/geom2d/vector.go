package geom2d

import (
	"fmt"
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
)

// Vector is a displacement with components in unit U and coordinate space C.
type Vector[U quantity.Unit, C any] struct {
	x, y quantity.Quantity[U]
}

func VectorFromComponents[U quantity.Unit, C any](x, y quantity.Quantity[U]) Vector[U, C] {
	return Vector[U, C]{x: x, y: y}
}

func ZeroVector[U quantity.Unit, C any]() Vector[U, C] { return Vector[U, C]{} }

// VectorFromList reads components in x, y order. It reports false unless
// list has exactly two elements.
func VectorFromList[U quantity.Unit, C any](list []quantity.Quantity[U]) (Vector[U, C], bool) {
	if len(list) != 2 {
		return Vector[U, C]{}, false
	}
	return Vector[U, C]{x: list[0], y: list[1]}, true
}

// VectorWithLength returns the vector of the given length along d.
func VectorWithLength[U quantity.Unit, C any](length quantity.Quantity[U], d Direction[C]) Vector[U, C] {
	return Vector[U, C]{x: length.Multiply(d.x), y: length.Multiply(d.y)}
}

func (v Vector[U, C]) X() quantity.Quantity[U] { return v.x }

func (v Vector[U, C]) Y() quantity.Quantity[U] { return v.y }

func (v Vector[U, C]) ToList() []quantity.Quantity[U] { return []quantity.Quantity[U]{v.x, v.y} }

func (v Vector[U, C]) Plus(other Vector[U, C]) Vector[U, C] {
	return Vector[U, C]{x: v.x.Plus(other.x), y: v.y.Plus(other.y)}
}

func (v Vector[U, C]) Minus(other Vector[U, C]) Vector[U, C] {
	return Vector[U, C]{x: v.x.Minus(other.x), y: v.y.Minus(other.y)}
}

func (v Vector[U, C]) Reverse() Vector[U, C] { return Vector[U, C]{x: v.x.Negate(), y: v.y.Negate()} }

func (v Vector[U, C]) Scale(factor float64) Vector[U, C] {
	return Vector[U, C]{x: v.x.Multiply(factor), y: v.y.Multiply(factor)}
}

func (v Vector[U, C]) Length() quantity.Quantity[U] {
	return quantity.FromRaw[U](math.Hypot(v.x.Raw(), v.y.Raw()))
}

func (v Vector[U, C]) SquaredLength() quantity.Quantity[quantity.Squared[U]] {
	return quantity.Square(v.x).Plus(quantity.Square(v.y))
}

// Direction reports false for a vector of zero length.
func (v Vector[U, C]) Direction() (Direction[C], bool) {
	return DirectionFromComponents[C](v.x.Raw(), v.y.Raw())
}

// Normalize returns v scaled to length one, or the zero vector when v has
// no direction.
func (v Vector[U, C]) Normalize() Vector[quantity.Unitless, C] {
	d, ok := v.Direction()
	if !ok {
		return ZeroVector[quantity.Unitless, C]()
	}
	return d.ToVector()
}

func (v Vector[U, C]) Dot(other Vector[U, C]) quantity.Quantity[quantity.Squared[U]] {
	return quantity.Times(v.x, other.x).Plus(quantity.Times(v.y, other.y))
}

func (v Vector[U, C]) Cross(other Vector[U, C]) quantity.Quantity[quantity.Squared[U]] {
	return quantity.Times(v.x, other.y).Minus(quantity.Times(v.y, other.x))
}

// ComponentIn returns the signed length of v along d.
func (v Vector[U, C]) ComponentIn(d Direction[C]) quantity.Quantity[U] {
	return v.x.Multiply(d.x).Plus(v.y.Multiply(d.y))
}

// ProjectionIn returns the part of v parallel to d.
func (v Vector[U, C]) ProjectionIn(d Direction[C]) Vector[U, C] {
	return VectorWithLength(v.ComponentIn(d), d)
}

func (v Vector[U, C]) RotateBy(a angle.Angle) Vector[U, C] {
	x, y := rotate(v.x.Raw(), v.y.Raw(), a)
	return fromRaw[U, C](x, y)
}

func (v Vector[U, C]) RotateCounterclockwise() Vector[U, C] {
	return Vector[U, C]{x: v.y.Negate(), y: v.x}
}

func (v Vector[U, C]) RotateClockwise() Vector[U, C] {
	return Vector[U, C]{x: v.y, y: v.x.Negate()}
}

// MirrorAcross reflects v across the direction of axis; the axis origin
// does not affect a displacement.
func (v Vector[U, C]) MirrorAcross(axis Axis[U, C]) Vector[U, C] {
	x, y := mirror(v.x.Raw(), v.y.Raw(), axis.direction)
	return fromRaw[U, C](x, y)
}

func (v Vector[U, C]) Equal(other Vector[U, C]) bool {
	return v.x.Equal(other.x) && v.y.Equal(other.y)
}

// EqualWithin reports whether the vectors differ by at most tolerance in
// length.
func (v Vector[U, C]) EqualWithin(tolerance quantity.Quantity[U], other Vector[U, C]) bool {
	return v.Minus(other).Length().LessOrEqual(tolerance.Abs())
}

func (v Vector[U, C]) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.x, v.y)
}

func fromRaw[U quantity.Unit, C any](x, y float64) Vector[U, C] {
	return Vector[U, C]{x: quantity.FromRaw[U](x), y: quantity.FromRaw[U](y)}
}
