// Package power converts between units of energy per time.
package power

import "github.com/zeusync/dimension/pkg/quantity"

type Power = quantity.Quantity[quantity.Watts]

var (
	watt                 = quantity.NewConversion[quantity.Watts](1)
	kilowatt             = quantity.NewConversion[quantity.Watts](1e3)
	megawatt             = quantity.NewConversion[quantity.Watts](1e6)
	metricHorsepower     = quantity.NewConversion[quantity.Watts](735.49875)
	mechanicalHorsepower = quantity.NewConversion[quantity.Watts](745.6998715822702)
	electricalHorsepower = quantity.NewConversion[quantity.Watts](746)
)

func Watts(v float64) Power   { return watt.Into(v) }
func InWatts(p Power) float64 { return watt.OutOf(p) }

func Kilowatts(v float64) Power   { return kilowatt.Into(v) }
func InKilowatts(p Power) float64 { return kilowatt.OutOf(p) }

func Megawatts(v float64) Power   { return megawatt.Into(v) }
func InMegawatts(p Power) float64 { return megawatt.OutOf(p) }

func MetricHorsepower(v float64) Power   { return metricHorsepower.Into(v) }
func InMetricHorsepower(p Power) float64 { return metricHorsepower.OutOf(p) }

func MechanicalHorsepower(v float64) Power   { return mechanicalHorsepower.Into(v) }
func InMechanicalHorsepower(p Power) float64 { return mechanicalHorsepower.OutOf(p) }

func ElectricalHorsepower(v float64) Power   { return electricalHorsepower.Into(v) }
func InElectricalHorsepower(p Power) float64 { return electricalHorsepower.OutOf(p) }
