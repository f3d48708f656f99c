// Package geom2d holds points, vectors, directions, axes and frames in a
// plane, and converts between a global coordinate space and the local space
// a frame defines.
//
// Every type carries a phantom coordinate tag C so that values expressed in
// different spaces cannot be mixed. A Frame[U, G, L] lives in space G and
// defines space L:
//
//	type World struct{}
//	type Body struct{}
//
//	body := geom2d.AtPoint[quantity.Meters, World, Body](geom2d.PointXY(length.Meters(2), length.Meters(1)))
//	global := body.PlacePoint(local)   // Point[Meters, Body] -> Point[Meters, World]
//	local = body.RelativePoint(global) // and back
//
// Frames are orthonormal, so RelativePoint applies the transpose of the
// basis matrix rather than a general inverse.
package geom2d

import (
	"fmt"
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
)

// Direction is a unit vector in coordinate space C. The zero value is not a
// direction: it has no length, and a Frame or Axis built from it collapses
// every point onto its origin. Obtain directions from the constructors.
type Direction[C any] struct {
	x, y float64
}

// DirectionFromComponents normalizes (x, y). It reports false when the
// magnitude is within tolerance of zero.
func DirectionFromComponents[C any](x, y float64) (Direction[C], bool) {
	m := math.Hypot(x, y)
	if !(m >= quantity.Tolerance()) || math.IsInf(m, 0) {
		return Direction[C]{}, false
	}
	return Direction[C]{x: x / m, y: y / m}, true
}

// DirectionFromAngle returns the direction a counterclockwise from positive X.
func DirectionFromAngle[C any](a angle.Angle) Direction[C] {
	return Direction[C]{x: angle.Cos(a), y: angle.Sin(a)}
}

func PositiveX[C any]() Direction[C] { return Direction[C]{x: 1} }
func NegativeX[C any]() Direction[C] { return Direction[C]{x: -1} }
func PositiveY[C any]() Direction[C] { return Direction[C]{y: 1} }
func NegativeY[C any]() Direction[C] { return Direction[C]{y: -1} }

func (d Direction[C]) X() float64 { return d.x }

func (d Direction[C]) Y() float64 { return d.y }

func (d Direction[C]) Components() (float64, float64) { return d.x, d.y }

// ToAngle returns the angle from positive X, in (-π, π].
func (d Direction[C]) ToAngle() angle.Angle {
	return angle.Radians(math.Atan2(d.y, d.x))
}

func (d Direction[C]) Reverse() Direction[C] { return Direction[C]{x: -d.x, y: -d.y} }

// RotateCounterclockwise turns d by a quarter turn.
func (d Direction[C]) RotateCounterclockwise() Direction[C] { return Direction[C]{x: -d.y, y: d.x} }

func (d Direction[C]) RotateClockwise() Direction[C] { return Direction[C]{x: d.y, y: -d.x} }

func (d Direction[C]) RotateBy(a angle.Angle) Direction[C] {
	x, y := rotate(d.x, d.y, a)
	return Direction[C]{x: x, y: y}
}

// MirrorAcross reflects d across any axis running along axis. MirrorDirection
// takes an Axis instead.
func (d Direction[C]) MirrorAcross(axis Direction[C]) Direction[C] {
	x, y := mirror(d.x, d.y, axis)
	return Direction[C]{x: x, y: y}
}

func (d Direction[C]) Dot(other Direction[C]) float64 { return d.x*other.x + d.y*other.y }

func (d Direction[C]) Cross(other Direction[C]) float64 { return d.x*other.y - d.y*other.x }

// AngleFrom returns the signed angle that rotates other onto d.
func (d Direction[C]) AngleFrom(other Direction[C]) angle.Angle {
	return angle.Radians(math.Atan2(other.Cross(d), other.Dot(d)))
}

func (d Direction[C]) Equal(other Direction[C]) bool {
	return quantity.Float(d.x).Equal(quantity.Float(other.x)) &&
		quantity.Float(d.y).Equal(quantity.Float(other.y))
}

// ToVector returns d as a dimensionless vector of length one.
func (d Direction[C]) ToVector() Vector[quantity.Unitless, C] {
	return Vector[quantity.Unitless, C]{x: quantity.Float(d.x), y: quantity.Float(d.y)}
}

func (d Direction[C]) String() string {
	return fmt.Sprintf("Direction(%g, %g)", d.x, d.y)
}

func rotate(x, y float64, a angle.Angle) (float64, float64) {
	c, s := angle.Cos(a), angle.Sin(a)
	return c*x - s*y, s*x + c*y
}

// mirror reflects (x, y) across the line through the origin along axis.
func mirror[C any](x, y float64, axis Direction[C]) (float64, float64) {
	k := 2 * (x*axis.x + y*axis.y)
	return k*axis.x - x, k*axis.y - y
}
