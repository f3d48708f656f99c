package charge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/charge"
	"github.com/zeusync/dimension/pkg/units/current"
	"github.com/zeusync/dimension/pkg/units/duration"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("coulombs", charge.Coulombs, charge.InCoulombs),
		testutil.Pair("ampere hours", charge.AmpereHours, charge.InAmpereHours),
		testutil.Pair("milliampere hours", charge.MilliampereHours, charge.InMilliampereHours),
	})
}

func TestBatteryDrain(t *testing.T) {
	var drained charge.Charge = quantity.Times(current.Milliamperes(500), duration.Hours(4))
	assert.True(t, drained.Equal(charge.MilliampereHours(2000)))
	assert.True(t, drained.Equal(charge.AmpereHours(2)))
	assert.True(t, quantity.Over(charge.AmpereHours(3), duration.Hours(6)).Equal(current.Amperes(0.5)))
	assert.True(t, quantity.OverLeft(charge.Coulombs(10), current.Amperes(2)).Equal(duration.Seconds(5)))
}
