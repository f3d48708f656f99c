// Package mass converts between units of mass; the canonical unit is the
// kilogram.
package mass

import "github.com/zeusync/dimension/pkg/quantity"

type Mass = quantity.Quantity[quantity.Kilograms]

const poundInKilograms = 0.45359237

var (
	kilogram  = quantity.NewConversion[quantity.Kilograms](1)
	gram      = quantity.NewConversion[quantity.Kilograms](1e-3)
	milligram = quantity.NewConversion[quantity.Kilograms](1e-6)
	metricTon = quantity.NewConversion[quantity.Kilograms](1e3)
	pound     = quantity.NewConversion[quantity.Kilograms](poundInKilograms)
	ounce     = quantity.NewConversion[quantity.Kilograms](poundInKilograms / 16)
	longTon   = quantity.NewConversion[quantity.Kilograms](poundInKilograms * 2240)
	shortTon  = quantity.NewConversion[quantity.Kilograms](poundInKilograms * 2000)
)

func Kilograms(v float64) Mass   { return kilogram.Into(v) }
func InKilograms(m Mass) float64 { return kilogram.OutOf(m) }

func Grams(v float64) Mass   { return gram.Into(v) }
func InGrams(m Mass) float64 { return gram.OutOf(m) }

func Milligrams(v float64) Mass   { return milligram.Into(v) }
func InMilligrams(m Mass) float64 { return milligram.OutOf(m) }

func MetricTons(v float64) Mass   { return metricTon.Into(v) }
func InMetricTons(m Mass) float64 { return metricTon.OutOf(m) }

// Pounds are avoirdupois pounds.
func Pounds(v float64) Mass   { return pound.Into(v) }
func InPounds(m Mass) float64 { return pound.OutOf(m) }

func Ounces(v float64) Mass   { return ounce.Into(v) }
func InOunces(m Mass) float64 { return ounce.OutOf(m) }

// LongTons are imperial tons of 2240 pounds.
func LongTons(v float64) Mass   { return longTon.Into(v) }
func InLongTons(m Mass) float64 { return longTon.OutOf(m) }

// ShortTons are US tons of 2000 pounds.
func ShortTons(v float64) Mass   { return shortTon.Into(v) }
func InShortTons(m Mass) float64 { return shortTon.OutOf(m) }
