package testutil

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

// Conversion is one builder/accessor pair of the unit catalog reduced to a
// float round trip.
type Conversion struct {
	Name      string
	RoundTrip func(float64) float64
}

// Pair adapts a builder/accessor pair to a Conversion.
func Pair[Q any](name string, into func(float64) Q, outOf func(Q) float64) Conversion {
	return Conversion{
		Name:      name,
		RoundTrip: func(v float64) float64 { return outOf(into(v)) },
	}
}

var fixedValues = []float64{0, 1, -1, 0.5, 123.456, -987.25, 1e-3, 1e6}

// CheckRoundTrips asserts outOf(into(v)) ≈ v for fixed and random values.
func CheckRoundTrips(t *testing.T, conversions []Conversion) {
	t.Helper()
	for _, c := range conversions {
		t.Run(c.Name, func(t *testing.T) {
			for _, v := range fixedValues {
				got := c.RoundTrip(v)
				assert.Truef(t, Close(got, v), "round trip of %v gave %v", v, got)
			}
			Check(t, DefaultTrials, 1e6, func(f *fuzz.Fuzzer) error {
				v := Float(f)
				got := c.RoundTrip(v)
				return Expect(Close(got, v), "round trip of %v gave %v", v, got)
			})
		})
	}
}
