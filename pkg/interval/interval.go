// Package interval implements closed bounds on quantities and propagates them
// through the quantity operations.
//
// An Interval always satisfies Min <= Max: every constructor sorts its
// inputs. Propagated operations are sound: for every x in I and y in J,
// f(x, y) lies in the interval op(I, J).
package interval

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/dimension/pkg/quantity"
)

// Interval is the closed range [min, max] of quantities in unit U.
type Interval[U quantity.Unit] struct {
	min, max quantity.Quantity[U]
}

// From builds the interval spanning a and b in either order.
func From[U quantity.Unit](a, b quantity.Quantity[U]) Interval[U] {
	if b.Raw() < a.Raw() {
		return Interval[U]{min: b, max: a}
	}
	return Interval[U]{min: a, max: b}
}

func FromEndpoints[U quantity.Unit](endpoints [2]quantity.Quantity[U]) Interval[U] {
	return From(endpoints[0], endpoints[1])
}

// Singleton is the zero-width interval [q, q].
func Singleton[U quantity.Unit](q quantity.Quantity[U]) Interval[U] {
	return Interval[U]{min: q, max: q}
}

func fromRaw[U quantity.Unit](a, b float64) Interval[U] {
	return From(quantity.FromRaw[U](a), quantity.FromRaw[U](b))
}

func (i Interval[U]) Min() quantity.Quantity[U] { return i.min }

func (i Interval[U]) Max() quantity.Quantity[U] { return i.max }

func (i Interval[U]) Endpoints() [2]quantity.Quantity[U] {
	return [2]quantity.Quantity[U]{i.min, i.max}
}

func (i Interval[U]) Width() quantity.Quantity[U] { return i.max.Minus(i.min) }

func (i Interval[U]) Midpoint() quantity.Quantity[U] { return quantity.Midpoint(i.min, i.max) }

func (i Interval[U]) IsSingleton() bool { return i.min.Equal(i.max) }

// Contains reports whether q lies in the interval, allowing the configured
// tolerance at both ends.
func (i Interval[U]) Contains(q quantity.Quantity[U]) bool {
	return i.min.LessOrEqual(q) && q.LessOrEqual(i.max)
}

func (i Interval[U]) ContainsInterval(other Interval[U]) bool {
	return i.min.LessOrEqual(other.min) && other.max.LessOrEqual(i.max)
}

// Intersects reports whether the two intervals share at least one point.
// Touching endpoints count.
func (i Interval[U]) Intersects(other Interval[U]) bool {
	return i.min.LessOrEqual(other.max) && other.min.LessOrEqual(i.max)
}

// Intersection returns the overlap of the intervals, or false when they
// do not intersect.
func (i Interval[U]) Intersection(other Interval[U]) (Interval[U], bool) {
	if !i.Intersects(other) {
		return Interval[U]{}, false
	}
	return fromRaw[U](
		math.Max(i.min.Raw(), other.min.Raw()),
		math.Min(i.max.Raw(), other.max.Raw()),
	), true
}

// Union returns the smallest interval containing both. Disjoint inputs
// produce their convex hull, including the gap between them.
func (i Interval[U]) Union(other Interval[U]) Interval[U] {
	return Interval[U]{
		min: quantity.FromRaw[U](math.Min(i.min.Raw(), other.min.Raw())),
		max: quantity.FromRaw[U](math.Max(i.max.Raw(), other.max.Raw())),
	}
}

// Interpolate maps t = 0 to Min and t = 1 to Max. Values of t outside
// [0, 1] extrapolate.
func (i Interval[U]) Interpolate(t float64) quantity.Quantity[U] {
	return quantity.Interpolate(i.min, i.max, t)
}

// InterpolationParameter is the inverse of Interpolate. For a singleton it
// returns 0 at the point and ±Inf on either side.
func (i Interval[U]) InterpolationParameter(q quantity.Quantity[U]) float64 {
	lo, hi, x := i.min.Raw(), i.max.Raw(), q.Raw()
	switch {
	case lo < hi:
		return (x - lo) / (hi - lo)
	case x < lo:
		return math.Inf(-1)
	case x > hi:
		return math.Inf(1)
	default:
		return 0
	}
}

// Expand widens the interval by by on both sides. A negative by shrinks it;
// shrinking past zero width collapses to the midpoint.
func (i Interval[U]) Expand(by quantity.Quantity[U]) Interval[U] {
	lo, hi := i.min.Raw()-by.Raw(), i.max.Raw()+by.Raw()
	if lo > hi {
		return Singleton(i.Midpoint())
	}
	return fromRaw[U](lo, hi)
}

// Clamp returns the point of the interval nearest to q.
func (i Interval[U]) Clamp(q quantity.Quantity[U]) quantity.Quantity[U] {
	return q.Clamp(i.min, i.max)
}

func (i Interval[U]) Equal(other Interval[U]) bool {
	return i.min.Equal(other.min) && i.max.Equal(other.max)
}

// Hash is consistent with Equal wherever both endpoint hashes are.
func (i Interval[U]) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], i.min.Hash())
	binary.LittleEndian.PutUint64(buf[8:], i.max.Hash())
	return xxhash.Sum64(buf[:])
}

func (i Interval[U]) String() string {
	return "[" + i.min.String() + ", " + i.max.String() + "]"
}
