// Package speed converts between units of length per time; the canonical
// unit is meters per second.
package speed

import "github.com/zeusync/dimension/pkg/quantity"

type Speed = quantity.Quantity[quantity.MetersPerSecond]

var (
	hour = quantity.NewConversion[quantity.Seconds](3600)

	meterPerSecond   = quantity.NewConversion[quantity.MetersPerSecond](1)
	kilometerPerHour = quantity.RateConversion(quantity.NewConversion[quantity.Meters](1000), hour)
	footPerSecond    = quantity.RateConversion(quantity.NewConversion[quantity.Meters](0.3048), quantity.NewConversion[quantity.Seconds](1))
	milePerHour      = quantity.RateConversion(quantity.NewConversion[quantity.Meters](1609.344), hour)
	knot             = quantity.RateConversion(quantity.NewConversion[quantity.Meters](1852), hour)
)

func MetersPerSecond(v float64) Speed   { return meterPerSecond.Into(v) }
func InMetersPerSecond(s Speed) float64 { return meterPerSecond.OutOf(s) }

func KilometersPerHour(v float64) Speed   { return kilometerPerHour.Into(v) }
func InKilometersPerHour(s Speed) float64 { return kilometerPerHour.OutOf(s) }

func FeetPerSecond(v float64) Speed   { return footPerSecond.Into(v) }
func InFeetPerSecond(s Speed) float64 { return footPerSecond.OutOf(s) }

func MilesPerHour(v float64) Speed   { return milePerHour.Into(v) }
func InMilesPerHour(s Speed) float64 { return milePerHour.OutOf(s) }

// Knots are nautical miles per hour.
func Knots(v float64) Speed   { return knot.Into(v) }
func InKnots(s Speed) float64 { return knot.OutOf(s) }
