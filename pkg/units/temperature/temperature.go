// Package temperature models absolute temperatures and temperature
// differences as distinct types.
//
// Absolute scales are affine: 0 °C is not "no temperature", so a
// Temperature cannot be scaled or summed. Subtracting two temperatures
// yields a Delta, and only a Delta can be added back:
//
//	boiling := temperature.DegreesCelsius(100)
//	rise := boiling.Minus(temperature.DegreesCelsius(20)) // 80 °C difference
//	temperature.DegreesFahrenheit(32).Plus(rise)
package temperature

import (
	"fmt"

	"github.com/zeusync/dimension/pkg/quantity"
)

// Delta is a temperature difference stored in kelvins.
type Delta = quantity.Quantity[quantity.CelsiusDegrees]

// Temperature is an absolute temperature stored in kelvins.
type Temperature struct {
	kelvins Delta
}

const (
	celsiusOffset    = 273.15
	fahrenheitOffset = 459.67
	fahrenheitScale  = 5.0 / 9.0
)

var (
	celsiusDegree    = quantity.NewConversion[quantity.CelsiusDegrees](1)
	fahrenheitDegree = quantity.NewConversion[quantity.CelsiusDegrees](fahrenheitScale)
)

// AbsoluteZero is 0 K.
var AbsoluteZero = Kelvins(0)

func Kelvins(v float64) Temperature {
	return Temperature{kelvins: quantity.FromRaw[quantity.CelsiusDegrees](v)}
}

func (t Temperature) InKelvins() float64 { return t.kelvins.Raw() }

func DegreesCelsius(v float64) Temperature { return Kelvins(v + celsiusOffset) }

func (t Temperature) InDegreesCelsius() float64 { return t.kelvins.Raw() - celsiusOffset }

func DegreesFahrenheit(v float64) Temperature {
	return Kelvins((v + fahrenheitOffset) * fahrenheitScale)
}

func (t Temperature) InDegreesFahrenheit() float64 {
	return t.kelvins.Raw()/fahrenheitScale - fahrenheitOffset
}

// CelsiusDegrees builds a difference of v kelvins.
func CelsiusDegrees(v float64) Delta   { return celsiusDegree.Into(v) }
func InCelsiusDegrees(d Delta) float64 { return celsiusDegree.OutOf(d) }

func FahrenheitDegrees(v float64) Delta   { return fahrenheitDegree.Into(v) }
func InFahrenheitDegrees(d Delta) float64 { return fahrenheitDegree.OutOf(d) }

func (t Temperature) Plus(d Delta) Temperature {
	return Temperature{kelvins: t.kelvins.Plus(d)}
}

func (t Temperature) MinusDelta(d Delta) Temperature {
	return Temperature{kelvins: t.kelvins.Minus(d)}
}

// Minus returns the difference t - other.
func (t Temperature) Minus(other Temperature) Delta {
	return t.kelvins.Minus(other.kelvins)
}

func (t Temperature) Equal(other Temperature) bool { return t.kelvins.Equal(other.kelvins) }

func (t Temperature) Compare(other Temperature) int { return t.kelvins.Compare(other.kelvins) }

func (t Temperature) Less(other Temperature) bool { return t.kelvins.Less(other.kelvins) }

func (t Temperature) Greater(other Temperature) bool { return t.kelvins.Greater(other.kelvins) }

// Hash agrees with Equal the same way quantity hashes do.
func (t Temperature) Hash() uint64 { return t.kelvins.Hash() }

func (t Temperature) Clamp(low, high Temperature) Temperature {
	return Temperature{kelvins: t.kelvins.Clamp(low.kelvins, high.kelvins)}
}

func Min(a, b Temperature) Temperature {
	return Temperature{kelvins: a.kelvins.Min(b.kelvins)}
}

func Max(a, b Temperature) Temperature {
	return Temperature{kelvins: a.kelvins.Max(b.kelvins)}
}

func (t Temperature) String() string {
	return fmt.Sprintf("%g K", t.kelvins.Raw())
}
