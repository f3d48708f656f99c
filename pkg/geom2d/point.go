package geom2d

import (
	"fmt"

	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/sequence"
	"github.com/zeusync/dimension/pkg/units/angle"
)

// Point is a position with coordinates in unit U and coordinate space C.
type Point[U quantity.Unit, C any] struct {
	x, y quantity.Quantity[U]
}

func PointXY[U quantity.Unit, C any](x, y quantity.Quantity[U]) Point[U, C] {
	return Point[U, C]{x: x, y: y}
}

func Origin[U quantity.Unit, C any]() Point[U, C] { return Point[U, C]{} }

// PointFromList reads coordinates in x, y order. It reports false unless
// list has exactly two elements.
func PointFromList[U quantity.Unit, C any](list []quantity.Quantity[U]) (Point[U, C], bool) {
	if len(list) != 2 {
		return Point[U, C]{}, false
	}
	return Point[U, C]{x: list[0], y: list[1]}, true
}

func (p Point[U, C]) X() quantity.Quantity[U] { return p.x }

func (p Point[U, C]) Y() quantity.Quantity[U] { return p.y }

func (p Point[U, C]) ToList() []quantity.Quantity[U] { return []quantity.Quantity[U]{p.x, p.y} }

func (p Point[U, C]) TranslateBy(v Vector[U, C]) Point[U, C] {
	return Point[U, C]{x: p.x.Plus(v.x), y: p.y.Plus(v.y)}
}

// TranslateIn moves p by distance along d.
func (p Point[U, C]) TranslateIn(d Direction[C], distance quantity.Quantity[U]) Point[U, C] {
	return p.TranslateBy(VectorWithLength(distance, d))
}

// VectorTo returns the displacement from p to other.
func (p Point[U, C]) VectorTo(other Point[U, C]) Vector[U, C] {
	return Vector[U, C]{x: other.x.Minus(p.x), y: other.y.Minus(p.y)}
}

// VectorFrom returns the displacement from other to p.
func (p Point[U, C]) VectorFrom(other Point[U, C]) Vector[U, C] {
	return other.VectorTo(p)
}

func (p Point[U, C]) DistanceFrom(other Point[U, C]) quantity.Quantity[U] {
	return p.VectorFrom(other).Length()
}

func (p Point[U, C]) SquaredDistanceFrom(other Point[U, C]) quantity.Quantity[quantity.Squared[U]] {
	return p.VectorFrom(other).SquaredLength()
}

func (p Point[U, C]) RotateAround(center Point[U, C], a angle.Angle) Point[U, C] {
	return center.TranslateBy(p.VectorFrom(center).RotateBy(a))
}

func (p Point[U, C]) MirrorAcross(axis Axis[U, C]) Point[U, C] {
	return axis.origin.TranslateBy(p.VectorFrom(axis.origin).MirrorAcross(axis))
}

// ScaleAbout moves p away from center by factor; a negative factor passes
// through center.
func (p Point[U, C]) ScaleAbout(center Point[U, C], factor float64) Point[U, C] {
	return center.TranslateBy(p.VectorFrom(center).Scale(factor))
}

// ProjectOnto returns the point of axis nearest to p.
func (p Point[U, C]) ProjectOnto(axis Axis[U, C]) Point[U, C] {
	return axis.origin.TranslateIn(axis.direction, p.SignedDistanceAlong(axis))
}

// SignedDistanceAlong measures p along axis from its origin.
func (p Point[U, C]) SignedDistanceAlong(axis Axis[U, C]) quantity.Quantity[U] {
	return p.VectorFrom(axis.origin).ComponentIn(axis.direction)
}

// SignedDistanceFrom is positive when p is to the left of axis.
func (p Point[U, C]) SignedDistanceFrom(axis Axis[U, C]) quantity.Quantity[U] {
	return p.VectorFrom(axis.origin).ComponentIn(axis.direction.RotateCounterclockwise())
}

func (p Point[U, C]) Equal(other Point[U, C]) bool {
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

func (p Point[U, C]) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.x, p.y)
}

func Midpoint[U quantity.Unit, C any](p, q Point[U, C]) Point[U, C] {
	return Interpolate(p, q, 0.5)
}

// Interpolate returns p at t = 0 and q at t = 1, extrapolating outside.
func Interpolate[U quantity.Unit, C any](p, q Point[U, C], t float64) Point[U, C] {
	return Point[U, C]{
		x: quantity.Interpolate(p.x, q.x, t),
		y: quantity.Interpolate(p.y, q.y, t),
	}
}

// Centroid averages the given points.
func Centroid[U quantity.Unit, C any](first Point[U, C], rest ...Point[U, C]) Point[U, C] {
	offset := sequence.Fold(sequence.From(rest), ZeroVector[U, C](), func(acc Vector[U, C], p Point[U, C]) Vector[U, C] {
		return acc.Plus(p.VectorFrom(first))
	})
	return first.TranslateBy(offset.Scale(1 / float64(len(rest)+1)))
}
