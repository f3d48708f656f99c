// Package energy converts between units of energy and work; the canonical
// unit is the joule (N·m).
package energy

import "github.com/zeusync/dimension/pkg/quantity"

type Energy = quantity.Quantity[quantity.Joules]

var (
	joule        = quantity.NewConversion[quantity.Joules](1)
	kilojoule    = quantity.NewConversion[quantity.Joules](1e3)
	megajoule    = quantity.NewConversion[quantity.Joules](1e6)
	kilowattHour = quantity.NewConversion[quantity.Joules](3.6e6)
	calorie      = quantity.NewConversion[quantity.Joules](4.184)
	kilocalorie  = quantity.NewConversion[quantity.Joules](4184)
)

func Joules(v float64) Energy   { return joule.Into(v) }
func InJoules(e Energy) float64 { return joule.OutOf(e) }

func Kilojoules(v float64) Energy   { return kilojoule.Into(v) }
func InKilojoules(e Energy) float64 { return kilojoule.OutOf(e) }

func Megajoules(v float64) Energy   { return megajoule.Into(v) }
func InMegajoules(e Energy) float64 { return megajoule.OutOf(e) }

func KilowattHours(v float64) Energy   { return kilowattHour.Into(v) }
func InKilowattHours(e Energy) float64 { return kilowattHour.OutOf(e) }

// Calories are thermochemical calories.
func Calories(v float64) Energy   { return calorie.Into(v) }
func InCalories(e Energy) float64 { return calorie.OutOf(e) }

func Kilocalories(v float64) Energy   { return kilocalorie.Into(v) }
func InKilocalories(e Energy) float64 { return kilocalorie.OutOf(e) }
