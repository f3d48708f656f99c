package quantity

import (
	"cmp"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equality, ordering and hashing are defined together here so that they stay
// consistent: values that are Equal compare as 0, and values that hash to
// different buckets are never Equal unless they straddle a rounding boundary
// of the configured precision.

// canonicalNaN is hashed for every NaN payload.
const canonicalNaN = 0x7FF8000000000001

// Equal reports whether |q - other| < Tolerance(). Identical values,
// including matching infinities, are always equal. NaN is never equal to
// anything, itself included.
func (q Quantity[U]) Equal(other Quantity[U]) bool {
	if q.raw == other.raw {
		return true
	}
	return math.Abs(q.raw-other.raw) < Tolerance()
}

// EqualWithin reports whether q and other differ by less than tolerance.
func (q Quantity[U]) EqualWithin(tolerance, other Quantity[U]) bool {
	if q.raw == other.raw {
		return true
	}
	return math.Abs(q.raw-other.raw) < math.Abs(tolerance.raw)
}

// Compare returns 0 when the values are Equal, otherwise -1 or +1 by the
// sign of q - other. NaN sorts before every number; two NaNs compare as 0
// even though they are not Equal.
func (q Quantity[U]) Compare(other Quantity[U]) int {
	switch {
	case q.Equal(other):
		return 0
	case q.raw < other.raw:
		return -1
	case q.raw > other.raw:
		return 1
	}
	return cmp.Compare(q.raw, other.raw)
}

func (q Quantity[U]) Less(other Quantity[U]) bool {
	return q.Compare(other) < 0
}

func (q Quantity[U]) LessOrEqual(other Quantity[U]) bool {
	return q.Compare(other) <= 0
}

func (q Quantity[U]) Greater(other Quantity[U]) bool {
	return q.Compare(other) > 0
}

func (q Quantity[U]) GreaterOrEqual(other Quantity[U]) bool {
	return q.Compare(other) >= 0
}

// Min and Max follow Compare, so NaN is the smallest value and ties keep q.

func (q Quantity[U]) Min(other Quantity[U]) Quantity[U] {
	if other.Compare(q) < 0 {
		return other
	}
	return q
}

func (q Quantity[U]) Max(other Quantity[U]) Quantity[U] {
	if other.Compare(q) > 0 {
		return other
	}
	return q
}

// Hash returns a hash of q rounded to the configured precision, suitable as
// a map key for values that are meant to be Equal.
func (q Quantity[U]) Hash() uint64 {
	return HashRaw(q.raw)
}

// HashRaw hashes a canonical value the way Quantity.Hash does. Types that
// wrap a Quantity-like float use it to stay consistent with Equal.
func HashRaw(raw float64) uint64 {
	var bits uint64
	if math.IsNaN(raw) {
		bits = canonicalNaN
	} else {
		rounded := math.Round(raw * math.Pow10(Precision()))
		if rounded == 0 {
			rounded = 0
		}
		bits = math.Float64bits(rounded)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	return xxhash.Sum64(buf[:])
}
