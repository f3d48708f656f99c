package voltage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/current"
	"github.com/zeusync/dimension/pkg/units/power"
	"github.com/zeusync/dimension/pkg/units/voltage"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("volts", voltage.Volts, voltage.InVolts),
		testutil.Pair("millivolts", voltage.Millivolts, voltage.InMillivolts),
		testutil.Pair("kilovolts", voltage.Kilovolts, voltage.InKilovolts),
	})
}

func TestPowerIsVoltageTimesCurrent(t *testing.T) {
	var v voltage.Voltage = quantity.RateOf(power.Watts(60), current.Amperes(0.5))
	assert.True(t, v.Equal(voltage.Volts(120)))
	assert.True(t, quantity.At(v, current.Amperes(2)).Equal(power.Watts(240)))
	assert.True(t, voltage.Kilovolts(1.5).Equal(voltage.Millivolts(1.5e6)))
}
