// Package duration converts between units of time; the canonical unit is
// the second. It also bridges to time.Duration.
package duration

import (
	"math"
	"time"

	"github.com/zeusync/dimension/pkg/quantity"
)

type Duration = quantity.Quantity[quantity.Seconds]

var (
	second      = quantity.NewConversion[quantity.Seconds](1)
	millisecond = quantity.NewConversion[quantity.Seconds](1e-3)
	microsecond = quantity.NewConversion[quantity.Seconds](1e-6)
	nanosecond  = quantity.NewConversion[quantity.Seconds](1e-9)
	minute      = quantity.NewConversion[quantity.Seconds](60)
	hour        = quantity.NewConversion[quantity.Seconds](3600)
	day         = quantity.NewConversion[quantity.Seconds](86400)
	week        = quantity.NewConversion[quantity.Seconds](604800)
	julianYear  = quantity.NewConversion[quantity.Seconds](31557600)
)

func Seconds(v float64) Duration   { return second.Into(v) }
func InSeconds(d Duration) float64 { return second.OutOf(d) }

func Milliseconds(v float64) Duration   { return millisecond.Into(v) }
func InMilliseconds(d Duration) float64 { return millisecond.OutOf(d) }

func Microseconds(v float64) Duration   { return microsecond.Into(v) }
func InMicroseconds(d Duration) float64 { return microsecond.OutOf(d) }

func Nanoseconds(v float64) Duration   { return nanosecond.Into(v) }
func InNanoseconds(d Duration) float64 { return nanosecond.OutOf(d) }

func Minutes(v float64) Duration   { return minute.Into(v) }
func InMinutes(d Duration) float64 { return minute.OutOf(d) }

func Hours(v float64) Duration   { return hour.Into(v) }
func InHours(d Duration) float64 { return hour.OutOf(d) }

func Days(v float64) Duration   { return day.Into(v) }
func InDays(d Duration) float64 { return day.OutOf(d) }

func Weeks(v float64) Duration   { return week.Into(v) }
func InWeeks(d Duration) float64 { return week.OutOf(d) }

// JulianYears are years of exactly 365.25 days.
func JulianYears(v float64) Duration   { return julianYear.Into(v) }
func InJulianYears(d Duration) float64 { return julianYear.OutOf(d) }

// FromDuration converts a time.Duration.
func FromDuration(d time.Duration) Duration {
	return Seconds(d.Seconds())
}

// ToDuration converts to a time.Duration rounded to the nearest nanosecond.
// Values outside the range of time.Duration saturate.
func ToDuration(d Duration) time.Duration {
	ns := math.Round(InNanoseconds(d))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
