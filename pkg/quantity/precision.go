package quantity

import (
	"math"
	"sync/atomic"
)

const (
	// DefaultPrecision is the number of decimal digits compared by Equal,
	// Compare and Hash unless SetPrecision says otherwise.
	DefaultPrecision = 10

	MinPrecision = 1
	MaxPrecision = 15
)

// precision is the single process-wide comparison setting. There is no per
// call override: changing it affects every comparison that follows.
var precision = func() *atomic.Int64 {
	p := new(atomic.Int64)
	p.Store(DefaultPrecision)
	return p
}()

// Precision returns the number of decimal digits used by tolerant comparisons.
func Precision() int {
	return int(precision.Load())
}

// SetPrecision changes the comparison precision and returns the previous
// value so callers can restore it:
//
//	prev := quantity.SetPrecision(6)
//	defer quantity.SetPrecision(prev)
//
// Values outside [MinPrecision, MaxPrecision] are clamped.
func SetPrecision(digits int) (previous int) {
	digits = max(MinPrecision, min(MaxPrecision, digits))
	return int(precision.Swap(int64(digits)))
}

// Tolerance is the absolute difference below which two raw values are equal.
func Tolerance() float64 {
	return math.Pow10(-Precision())
}
