// Package resistance converts between units of electric resistance; the
// canonical unit is the ohm (V/A).
package resistance

import "github.com/zeusync/dimension/pkg/quantity"

type Resistance = quantity.Quantity[quantity.Ohms]

var (
	ohm     = quantity.NewConversion[quantity.Ohms](1)
	kiloohm = quantity.NewConversion[quantity.Ohms](1e3)
	megaohm = quantity.NewConversion[quantity.Ohms](1e6)
)

func Ohms(v float64) Resistance   { return ohm.Into(v) }
func InOhms(r Resistance) float64 { return ohm.OutOf(r) }

func Kiloohms(v float64) Resistance   { return kiloohm.Into(v) }
func InKiloohms(r Resistance) float64 { return kiloohm.OutOf(r) }

func Megaohms(v float64) Resistance   { return megaohm.Into(v) }
func InMegaohms(r Resistance) float64 { return megaohm.OutOf(r) }
