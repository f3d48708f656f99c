package geom2d

import (
	"fmt"
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
)

// Frame is a local coordinate system placed in space G. It defines space L:
// coordinates in L are measured from the origin along XDirection and
// YDirection, which are always perpendicular unit vectors.
type Frame[U quantity.Unit, G, L any] struct {
	origin Point[U, G]
	x, y   Direction[G]
}

// AtOrigin returns the frame that coincides with G's own axes.
func AtOrigin[U quantity.Unit, G, L any]() Frame[U, G, L] {
	return AtPoint[U, G, L](Origin[U, G]())
}

// AtPoint returns a frame at origin aligned with G's axes.
func AtPoint[U quantity.Unit, G, L any](origin Point[U, G]) Frame[U, G, L] {
	return Frame[U, G, L]{origin: origin, x: PositiveX[G](), y: PositiveY[G]()}
}

// WithXDirection returns a right-handed frame whose Y direction is x turned
// a quarter turn counterclockwise.
func WithXDirection[U quantity.Unit, G, L any](origin Point[U, G], x Direction[G]) Frame[U, G, L] {
	return Frame[U, G, L]{origin: origin, x: x, y: x.RotateCounterclockwise()}
}

// WithYDirection returns a right-handed frame whose X direction is y turned
// a quarter turn clockwise.
func WithYDirection[U quantity.Unit, G, L any](origin Point[U, G], y Direction[G]) Frame[U, G, L] {
	return Frame[U, G, L]{origin: origin, x: y.RotateClockwise(), y: y}
}

// FrameFromDirections reports false unless x and y are perpendicular. The
// frame may be left-handed.
func FrameFromDirections[U quantity.Unit, G, L any](origin Point[U, G], x, y Direction[G]) (Frame[U, G, L], bool) {
	if math.Abs(x.Dot(y)) >= quantity.Tolerance() {
		return Frame[U, G, L]{}, false
	}
	return Frame[U, G, L]{origin: origin, x: x, y: y}, true
}

func FrameFromXAxis[U quantity.Unit, G, L any](axis Axis[U, G]) Frame[U, G, L] {
	return WithXDirection[U, G, L](axis.origin, axis.direction)
}

func FrameFromYAxis[U quantity.Unit, G, L any](axis Axis[U, G]) Frame[U, G, L] {
	return WithYDirection[U, G, L](axis.origin, axis.direction)
}

func (f Frame[U, G, L]) OriginPoint() Point[U, G] { return f.origin }

func (f Frame[U, G, L]) XDirection() Direction[G] { return f.x }

func (f Frame[U, G, L]) YDirection() Direction[G] { return f.y }

func (f Frame[U, G, L]) XAxis() Axis[U, G] { return AxisThrough(f.origin, f.x) }

func (f Frame[U, G, L]) YAxis() Axis[U, G] { return AxisThrough(f.origin, f.y) }

// IsRightHanded reports whether Y is X turned counterclockwise.
func (f Frame[U, G, L]) IsRightHanded() bool { return f.x.Cross(f.y) > 0 }

func (f Frame[U, G, L]) ReverseX() Frame[U, G, L] {
	return Frame[U, G, L]{origin: f.origin, x: f.x.Reverse(), y: f.y}
}

func (f Frame[U, G, L]) ReverseY() Frame[U, G, L] {
	return Frame[U, G, L]{origin: f.origin, x: f.x, y: f.y.Reverse()}
}

func (f Frame[U, G, L]) MoveTo(origin Point[U, G]) Frame[U, G, L] {
	return Frame[U, G, L]{origin: origin, x: f.x, y: f.y}
}

// RotateBy turns the frame about its own origin.
func (f Frame[U, G, L]) RotateBy(a angle.Angle) Frame[U, G, L] {
	return Frame[U, G, L]{origin: f.origin, x: f.x.RotateBy(a), y: f.y.RotateBy(a)}
}

func (f Frame[U, G, L]) RotateAround(center Point[U, G], a angle.Angle) Frame[U, G, L] {
	return Frame[U, G, L]{origin: f.origin.RotateAround(center, a), x: f.x.RotateBy(a), y: f.y.RotateBy(a)}
}

func (f Frame[U, G, L]) TranslateBy(v Vector[U, G]) Frame[U, G, L] {
	return Frame[U, G, L]{origin: f.origin.TranslateBy(v), x: f.x, y: f.y}
}

// MirrorAcross reflects the frame, flipping its handedness.
func (f Frame[U, G, L]) MirrorAcross(axis Axis[U, G]) Frame[U, G, L] {
	return Frame[U, G, L]{
		origin: f.origin.MirrorAcross(axis),
		x:      MirrorDirection(f.x, axis),
		y:      MirrorDirection(f.y, axis),
	}
}

func (f Frame[U, G, L]) Equal(other Frame[U, G, L]) bool {
	return f.origin.Equal(other.origin) && f.x.Equal(other.x) && f.y.Equal(other.y)
}

func (f Frame[U, G, L]) String() string {
	return fmt.Sprintf("Frame(%v, %v, %v)", f.origin, f.x, f.y)
}

// place maps local components onto G: x·X + y·Y.
func (f Frame[U, G, L]) place(x, y float64) (float64, float64) {
	return x*f.x.x + y*f.y.x, x*f.x.y + y*f.y.y
}

// relative applies the transpose of [X|Y].
func (f Frame[U, G, L]) relative(x, y float64) (float64, float64) {
	return x*f.x.x + y*f.x.y, x*f.y.x + y*f.y.y
}

// PlacePoint converts a point given in L into G.
func (f Frame[U, G, L]) PlacePoint(p Point[U, L]) Point[U, G] {
	x, y := f.place(p.x.Raw(), p.y.Raw())
	return Point[U, G]{
		x: f.origin.x.Plus(quantity.FromRaw[U](x)),
		y: f.origin.y.Plus(quantity.FromRaw[U](y)),
	}
}

// RelativePoint converts a point given in G into L.
func (f Frame[U, G, L]) RelativePoint(p Point[U, G]) Point[U, L] {
	d := p.VectorFrom(f.origin)
	x, y := f.relative(d.x.Raw(), d.y.Raw())
	return Point[U, L]{x: quantity.FromRaw[U](x), y: quantity.FromRaw[U](y)}
}

func (f Frame[U, G, L]) PlaceVector(v Vector[U, L]) Vector[U, G] {
	x, y := f.place(v.x.Raw(), v.y.Raw())
	return fromRaw[U, G](x, y)
}

func (f Frame[U, G, L]) RelativeVector(v Vector[U, G]) Vector[U, L] {
	x, y := f.relative(v.x.Raw(), v.y.Raw())
	return fromRaw[U, L](x, y)
}

func (f Frame[U, G, L]) PlaceDirection(d Direction[L]) Direction[G] {
	x, y := f.place(d.x, d.y)
	return Direction[G]{x: x, y: y}
}

func (f Frame[U, G, L]) RelativeDirection(d Direction[G]) Direction[L] {
	x, y := f.relative(d.x, d.y)
	return Direction[L]{x: x, y: y}
}

func (f Frame[U, G, L]) PlaceAxis(a Axis[U, L]) Axis[U, G] {
	return Axis[U, G]{origin: f.PlacePoint(a.origin), direction: f.PlaceDirection(a.direction)}
}

func (f Frame[U, G, L]) RelativeAxis(a Axis[U, G]) Axis[U, L] {
	return Axis[U, L]{origin: f.RelativePoint(a.origin), direction: f.RelativeDirection(a.direction)}
}

// PlaceFrameIn converts inner, a frame defined in outer's local space L,
// into a frame in G.
func PlaceFrameIn[U quantity.Unit, G, L, M any](outer Frame[U, G, L], inner Frame[U, L, M]) Frame[U, G, M] {
	return Frame[U, G, M]{
		origin: outer.PlacePoint(inner.origin),
		x:      outer.PlaceDirection(inner.x),
		y:      outer.PlaceDirection(inner.y),
	}
}

// FrameRelativeTo expresses f, a frame in G, in the local space of reference.
func FrameRelativeTo[U quantity.Unit, G, L, M any](reference Frame[U, G, L], f Frame[U, G, M]) Frame[U, L, M] {
	return Frame[U, L, M]{
		origin: reference.RelativePoint(f.origin),
		x:      reference.RelativeDirection(f.x),
		y:      reference.RelativeDirection(f.y),
	}
}
