// Package voltage converts between units of electric potential; the
// canonical unit is the volt (W/A).
package voltage

import "github.com/zeusync/dimension/pkg/quantity"

type Voltage = quantity.Quantity[quantity.Volts]

var (
	volt      = quantity.NewConversion[quantity.Volts](1)
	millivolt = quantity.NewConversion[quantity.Volts](1e-3)
	kilovolt  = quantity.NewConversion[quantity.Volts](1e3)
)

func Volts(v float64) Voltage   { return volt.Into(v) }
func InVolts(u Voltage) float64 { return volt.OutOf(u) }

func Millivolts(v float64) Voltage   { return millivolt.Into(v) }
func InMillivolts(u Voltage) float64 { return millivolt.OutOf(u) }

func Kilovolts(v float64) Voltage   { return kilovolt.Into(v) }
func InKilovolts(u Voltage) float64 { return kilovolt.OutOf(u) }
