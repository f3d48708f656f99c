package duration_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/units/duration"
)

func TestRoundTrips(t *testing.T) {
	testutil.CheckRoundTrips(t, []testutil.Conversion{
		testutil.Pair("seconds", duration.Seconds, duration.InSeconds),
		testutil.Pair("milliseconds", duration.Milliseconds, duration.InMilliseconds),
		testutil.Pair("microseconds", duration.Microseconds, duration.InMicroseconds),
		testutil.Pair("nanoseconds", duration.Nanoseconds, duration.InNanoseconds),
		testutil.Pair("minutes", duration.Minutes, duration.InMinutes),
		testutil.Pair("hours", duration.Hours, duration.InHours),
		testutil.Pair("days", duration.Days, duration.InDays),
		testutil.Pair("weeks", duration.Weeks, duration.InWeeks),
		testutil.Pair("julian years", duration.JulianYears, duration.InJulianYears),
	})
}

func TestEquivalences(t *testing.T) {
	assert.True(t, duration.Minutes(90).Equal(duration.Hours(1.5)))
	assert.True(t, duration.Days(7).Equal(duration.Weeks(1)))
	assert.InDelta(t, 365.25, duration.InDays(duration.JulianYears(1)), 1e-9)
}

func TestTimeDurationBridge(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
	}{
		{name: "zero", in: 0},
		{name: "milliseconds", in: 1500 * time.Millisecond},
		{name: "negative", in: -3 * time.Hour},
		{name: "nanosecond", in: time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, duration.ToDuration(duration.FromDuration(tt.in)))
		})
	}

	assert.Equal(t, time.Duration(math.MaxInt64), duration.ToDuration(duration.JulianYears(1e6)))
	assert.Equal(t, time.Duration(0), duration.ToDuration(duration.Seconds(math.NaN())))
	assert.True(t, duration.FromDuration(2*time.Minute).Equal(duration.Seconds(120)))
}
