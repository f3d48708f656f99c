package angularspeed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
	"github.com/zeusync/dimension/pkg/units/angularspeed"
	"github.com/zeusync/dimension/pkg/units/duration"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("radians per second", angularspeed.RadiansPerSecond, angularspeed.InRadiansPerSecond),
		testutil.Pair("degrees per second", angularspeed.DegreesPerSecond, angularspeed.InDegreesPerSecond),
		testutil.Pair("turns per second", angularspeed.TurnsPerSecond, angularspeed.InTurnsPerSecond),
		testutil.Pair("revolutions per minute", angularspeed.RevolutionsPerMinute, angularspeed.InRevolutionsPerMinute),
	})
}

func TestRotationOverTime(t *testing.T) {
	w := angularspeed.RevolutionsPerMinute(60)
	assert.True(t, w.Equal(angularspeed.TurnsPerSecond(1)))
	assert.True(t, quantity.At(w, duration.Seconds(0.25)).Equal(angle.Degrees(90)))
	assert.True(t, quantity.RateOf(angle.Degrees(90), duration.Seconds(1)).Equal(angularspeed.DegreesPerSecond(90)))
}
