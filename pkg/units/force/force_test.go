package force_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/acceleration"
	"github.com/zeusync/dimension/pkg/units/force"
	"github.com/zeusync/dimension/pkg/units/mass"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("newtons", force.Newtons, force.InNewtons),
		testutil.Pair("kilonewtons", force.Kilonewtons, force.InKilonewtons),
		testutil.Pair("meganewtons", force.Meganewtons, force.InMeganewtons),
		testutil.Pair("pounds force", force.PoundsForce, force.InPoundsForce),
		testutil.Pair("kilograms force", force.KilogramsForce, force.InKilogramsForce),
	})
}

func TestNewtonsSecondLaw(t *testing.T) {
	var f force.Force = quantity.Times(mass.Kilograms(1), acceleration.Gees(1))
	assert.True(t, f.Equal(force.KilogramsForce(1)))

	var weight force.Force = quantity.Times(mass.Pounds(1), acceleration.Gees(1))
	assert.True(t, weight.Equal(force.PoundsForce(1)))

	assert.True(t, quantity.Over(force.Newtons(10), acceleration.MetersPerSecondSquared(2)).Equal(mass.Kilograms(5)))
}
