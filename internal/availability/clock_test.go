package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTimeNormalize12Hour(t *testing.T) {
	tests := []struct {
		name   string
		clock  ClockTime
		expect TimeOfDay
	}{
		{"midnight is 12 AM", ClockTime{Hour: 12, Minute: 0, Period: PeriodAM}, 0},
		{"noon is 12 PM", ClockTime{Hour: 12, Minute: 0, Period: PeriodPM}, 12 * 60},
		{"1 PM adds twelve hours", ClockTime{Hour: 1, Minute: 0, Period: PeriodPM}, 13 * 60},
		{"11 PM", ClockTime{Hour: 11, Minute: 30, Period: PeriodPM}, 23*60 + 30},
		{"9 AM used as-is", ClockTime{Hour: 9, Minute: 15, Period: PeriodAM}, 9*60 + 15},
		{"12:59 AM stays before 1 AM", ClockTime{Hour: 12, Minute: 59, Period: PeriodAM}, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.clock.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestClockTimeNormalize24Hour(t *testing.T) {
	got, err := ClockTime{Hour: 0, Minute: 0}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), got)

	got, err = ClockTime{Hour: 23, Minute: 59}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(23*60+59), got)
}

// Every 12-hour reading must land in [0, 1439] and agree with a manual
// 12-to-24 conversion.
func TestClockTimeNormalizeRoundTrip(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		am, err := ClockTime{Hour: hour, Minute: 0, Period: PeriodAM}.Normalize()
		require.NoError(t, err)
		pm, err := ClockTime{Hour: hour, Minute: 0, Period: PeriodPM}.Normalize()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, int(am), 0)
		assert.Less(t, int(am), MinutesPerDay)
		assert.GreaterOrEqual(t, int(pm), 0)
		assert.Less(t, int(pm), MinutesPerDay)

		if hour == 12 {
			assert.Equal(t, 0, am.Hour())
			assert.Equal(t, 12, pm.Hour())
		} else {
			assert.Equal(t, hour, am.Hour())
			assert.Equal(t, hour+12, pm.Hour())
		}
	}
}

func TestClockTimeNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		clock ClockTime
	}{
		{"hour 0 with period", ClockTime{Hour: 0, Minute: 0, Period: PeriodAM}},
		{"hour 13 with period", ClockTime{Hour: 13, Minute: 0, Period: PeriodPM}},
		{"hour 24 without period", ClockTime{Hour: 24, Minute: 0}},
		{"negative hour", ClockTime{Hour: -1, Minute: 0}},
		{"minute 60", ClockTime{Hour: 10, Minute: 60}},
		{"negative minute", ClockTime{Hour: 10, Minute: -5, Period: PeriodAM}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.clock.Normalize()
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60+30), got)

	got, err = ParseClock("17:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(17*60), got)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrMalformedTime)

	_, err = ParseClock("not a time")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
}

func TestLocalePeriodMarkers(t *testing.T) {
	p, ok := Arabic.PeriodOf("ص")
	require.True(t, ok)
	assert.Equal(t, PeriodAM, p)

	p, ok = Arabic.PeriodOf("م")
	require.True(t, ok)
	assert.Equal(t, PeriodPM, p)

	p, ok = English.PeriodOf("")
	require.True(t, ok)
	assert.Equal(t, PeriodNone, p)

	_, ok = English.PeriodOf("XX")
	assert.False(t, ok)
}
