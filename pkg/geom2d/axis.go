package geom2d

import (
	"fmt"

	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
)

// Axis is an oriented line: an origin point and a direction.
type Axis[U quantity.Unit, C any] struct {
	origin    Point[U, C]
	direction Direction[C]
}

func AxisThrough[U quantity.Unit, C any](origin Point[U, C], direction Direction[C]) Axis[U, C] {
	return Axis[U, C]{origin: origin, direction: direction}
}

// AxisThroughPoints builds the axis from p towards q. It reports false when
// the points coincide.
func AxisThroughPoints[U quantity.Unit, C any](p, q Point[U, C]) (Axis[U, C], bool) {
	d, ok := p.VectorTo(q).Direction()
	if !ok {
		return Axis[U, C]{}, false
	}
	return Axis[U, C]{origin: p, direction: d}, true
}

func XAxis[U quantity.Unit, C any]() Axis[U, C] {
	return Axis[U, C]{origin: Origin[U, C](), direction: PositiveX[C]()}
}

func YAxis[U quantity.Unit, C any]() Axis[U, C] {
	return Axis[U, C]{origin: Origin[U, C](), direction: PositiveY[C]()}
}

func (a Axis[U, C]) Origin() Point[U, C] { return a.origin }

func (a Axis[U, C]) Direction() Direction[C] { return a.direction }

func (a Axis[U, C]) Reverse() Axis[U, C] {
	return Axis[U, C]{origin: a.origin, direction: a.direction.Reverse()}
}

func (a Axis[U, C]) MoveTo(origin Point[U, C]) Axis[U, C] {
	return Axis[U, C]{origin: origin, direction: a.direction}
}

func (a Axis[U, C]) RotateAround(center Point[U, C], by angle.Angle) Axis[U, C] {
	return Axis[U, C]{origin: a.origin.RotateAround(center, by), direction: a.direction.RotateBy(by)}
}

func (a Axis[U, C]) TranslateBy(v Vector[U, C]) Axis[U, C] {
	return Axis[U, C]{origin: a.origin.TranslateBy(v), direction: a.direction}
}

func (a Axis[U, C]) MirrorAcross(other Axis[U, C]) Axis[U, C] {
	return Axis[U, C]{origin: a.origin.MirrorAcross(other), direction: MirrorDirection(a.direction, other)}
}

func (a Axis[U, C]) Equal(other Axis[U, C]) bool {
	return a.origin.Equal(other.origin) && a.direction.Equal(other.direction)
}

func (a Axis[U, C]) String() string {
	return fmt.Sprintf("Axis(%v, %v)", a.origin, a.direction)
}

// MirrorDirection reflects d across axis. A direction has no position, so
// only the direction of the axis matters.
func MirrorDirection[U quantity.Unit, C any](d Direction[C], axis Axis[U, C]) Direction[C] {
	return d.MirrorAcross(axis.direction)
}
