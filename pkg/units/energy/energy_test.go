package energy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/energy"
	"github.com/zeusync/dimension/pkg/units/force"
	"github.com/zeusync/dimension/pkg/units/length"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("joules", energy.Joules, energy.InJoules),
		testutil.Pair("kilojoules", energy.Kilojoules, energy.InKilojoules),
		testutil.Pair("megajoules", energy.Megajoules, energy.InMegajoules),
		testutil.Pair("kilowatt hours", energy.KilowattHours, energy.InKilowattHours),
		testutil.Pair("calories", energy.Calories, energy.InCalories),
		testutil.Pair("kilocalories", energy.Kilocalories, energy.InKilocalories),
	})
}

func TestWorkIsForceTimesDistance(t *testing.T) {
	var work energy.Energy = quantity.Times(force.Kilonewtons(2), length.Meters(3))
	assert.True(t, work.Equal(energy.Kilojoules(6)))
	assert.True(t, quantity.Over(work, length.Meters(6)).Equal(force.Newtons(1000)))
	assert.True(t, energy.Kilocalories(1).Equal(energy.Calories(1000)))
	assert.InDelta(t, 1, energy.InKilowattHours(energy.Megajoules(3.6)), 1e-12)
}
