package angle_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/units/angle"
	"github.com/zeusync/dimension/pkg/units/length"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("radians", angle.Radians, angle.InRadians),
		testutil.Pair("degrees", angle.Degrees, angle.InDegrees),
		testutil.Pair("turns", angle.Turns, angle.InTurns),
		testutil.Pair("gradians", angle.Gradians, angle.InGradians),
		testutil.Pair("arc minutes", angle.ArcMinutes, angle.InArcMinutes),
		testutil.Pair("arc seconds", angle.ArcSeconds, angle.InArcSeconds),
	})
}

func TestEquivalences(t *testing.T) {
	assert.True(t, angle.Degrees(180).Equal(angle.Pi))
	assert.True(t, angle.Turns(0.25).Equal(angle.HalfPi))
	assert.True(t, angle.Gradians(400).Equal(angle.TwoPi))
	assert.True(t, angle.ArcMinutes(60).Equal(angle.Degrees(1)))
	assert.True(t, angle.ArcSeconds(3600).Equal(angle.Degrees(1)))
}

func TestNormalize(t *testing.T) {
	assert.True(t, angle.Normalize(angle.Degrees(350)).Equal(angle.Normalize(angle.Degrees(-10))))
	assert.True(t, angle.Normalize(angle.Degrees(350)).Equal(angle.Degrees(-10)))
	assert.True(t, angle.Normalize(angle.Degrees(720)).Equal(angle.Zero))
	assert.True(t, angle.Normalize(angle.Degrees(180)).Equal(angle.Pi))
	assert.True(t, angle.Normalize(angle.Degrees(-180)).Equal(angle.Pi))

	testutil.Check(t, testutil.DefaultTrials, 1e4, func(f *fuzz.Fuzzer) error {
		a := angle.Degrees(testutil.Float(f))
		n := angle.Normalize(a)
		if err := testutil.Expect(n.Greater(angle.Pi.Negate()) && n.LessOrEqual(angle.Pi), "%v normalized out of range: %v", a, n); err != nil {
			return err
		}
		return testutil.Expect(math.Abs(angle.Sin(n)-angle.Sin(a)) < 1e-9 && math.Abs(angle.Cos(n)-angle.Cos(a)) < 1e-9,
			"normalizing %v changed its direction", a)
	})
}

func TestTrigonometry(t *testing.T) {
	assert.InDelta(t, 0.5, angle.Sin(angle.Degrees(30)), 1e-12)
	assert.InDelta(t, 0.5, angle.Cos(angle.Degrees(60)), 1e-12)
	assert.InDelta(t, 1, angle.Tan(angle.Degrees(45)), 1e-12)
	assert.True(t, angle.Asin(1).Equal(angle.HalfPi))
	assert.True(t, angle.Acos(-1).Equal(angle.Pi))
	assert.True(t, angle.Atan(1).Equal(angle.Degrees(45)))
	assert.True(t, angle.Atan2(length.Meters(1), length.Meters(-1)).Equal(angle.Degrees(135)))
}
