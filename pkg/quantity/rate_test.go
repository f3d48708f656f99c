package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/pkg/quantity"
)

func kilograms(v float64) quantity.Quantity[quantity.Kilograms] {
	return quantity.FromRaw[quantity.Kilograms](v)
}

func TestRateHelpers(t *testing.T) {
	speed := quantity.RateOf(meters(100), seconds(8))
	assert.InDelta(t, 12.5, speed.Raw(), 1e-12)
	assert.True(t, speed.Equal(quantity.Per(seconds(8), meters(100))))

	assert.True(t, quantity.At(speed, seconds(2)).Equal(meters(25)))
	assert.True(t, quantity.For(seconds(2), speed).Equal(meters(25)))
	assert.True(t, quantity.AtInverse(speed, meters(50)).Equal(seconds(4)))

	pace := quantity.Inverse(speed)
	assert.InDelta(t, 0.08, pace.Raw(), 1e-12)
	assert.True(t, quantity.At(pace, meters(50)).Equal(seconds(4)))
	assert.True(t, quantity.Inverse(pace).Equal(speed))
}

func TestRateProductCancelsSharedUnit(t *testing.T) {
	// Fuel use: kilograms per meter chained with meters per second gives
	// kilograms per second.
	perMeter := quantity.RateOf(kilograms(3), meters(1000))
	speed := quantity.RateOf(meters(20), seconds(1))

	perSecond := quantity.RateProduct(perMeter, speed)
	assert.InDelta(t, 0.06, perSecond.Raw(), 1e-12)

	var typed quantity.Quantity[quantity.Rate[quantity.Kilograms, quantity.Seconds]] = perSecond
	assert.True(t, quantity.At(typed, seconds(50)).Equal(kilograms(3)))
}

func TestDerivedUnitsCompose(t *testing.T) {
	acceleration := quantity.RateOf(quantity.RateOf(meters(10), seconds(1)), seconds(2))

	var force quantity.Quantity[quantity.Newtons] = quantity.Times(kilograms(4), acceleration)
	assert.InDelta(t, 20, force.Raw(), 1e-12)

	var work quantity.Quantity[quantity.Joules] = quantity.Times(force, meters(3))
	assert.InDelta(t, 60, work.Raw(), 1e-12)

	var power quantity.Quantity[quantity.Watts] = quantity.RateOf(work, seconds(6))
	assert.InDelta(t, 10, power.Raw(), 1e-12)
}

func TestConversion(t *testing.T) {
	feet := quantity.NewConversion[quantity.Meters](0.3048)
	hours := quantity.NewConversion[quantity.Seconds](3600)

	assert.True(t, feet.Into(10).Equal(meters(3.048)))
	assert.InDelta(t, 10, feet.OutOf(meters(3.048)), 1e-12)
	assert.Equal(t, 0.3048, feet.Factor())

	feetPerHour := quantity.RateConversion(feet, hours)
	assert.InDelta(t, 0.3048/3600, feetPerHour.Factor(), 1e-18)

	squareFeet := quantity.SquaredConversion(feet)
	assert.True(t, squareFeet.Into(1).Equal(quantity.Square(meters(0.3048))))

	cubicFeet := quantity.CubedConversion(feet)
	assert.True(t, cubicFeet.Into(1).Equal(quantity.Cube(meters(0.3048))))

	footSeconds := quantity.ProductConversion(feet, hours)
	assert.InDelta(t, 0.3048*3600, footSeconds.Factor(), 1e-9)
}
