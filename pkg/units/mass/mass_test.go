package mass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/units/mass"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("kilograms", mass.Kilograms, mass.InKilograms),
		testutil.Pair("grams", mass.Grams, mass.InGrams),
		testutil.Pair("milligrams", mass.Milligrams, mass.InMilligrams),
		testutil.Pair("metric tons", mass.MetricTons, mass.InMetricTons),
		testutil.Pair("pounds", mass.Pounds, mass.InPounds),
		testutil.Pair("ounces", mass.Ounces, mass.InOunces),
		testutil.Pair("long tons", mass.LongTons, mass.InLongTons),
		testutil.Pair("short tons", mass.ShortTons, mass.InShortTons),
	})
}

func TestEquivalences(t *testing.T) {
	assert.True(t, mass.Ounces(16).Equal(mass.Pounds(1)))
	assert.True(t, mass.Grams(1000).Equal(mass.Kilograms(1)))
	assert.InDelta(t, 2000, mass.InPounds(mass.ShortTons(1)), 1e-9)
	assert.InDelta(t, 1016.0469088, mass.InKilograms(mass.LongTons(1)), 1e-9)
}
