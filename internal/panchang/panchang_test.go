package panchang_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, panchang.Nakshatras, 27)
	assert.Len(t, panchang.Tithis, 16)
	assert.Len(t, panchang.Yogas, 27)
}

func TestDeriveIsDeterministic(t *testing.T) {
	d := date(2026, time.March, 14)

	first := panchang.Derive(d)
	second := panchang.Derive(d)

	assert.Equal(t, first, second)
}

func TestDeriveIgnoresTimeOfDayAndZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	morning := time.Date(2026, time.March, 14, 6, 15, 0, 0, ist)
	midnight := date(2026, time.March, 14)

	assert.Equal(t, panchang.Derive(midnight), panchang.Derive(morning))
}

func TestDeriveKnownDate(t *testing.T) {
	// 2026-01-03 is a Saturday: nakshatra index (3+0)%27, tithi index 2,
	// yoga index (3+0+6)%27.
	attrs := panchang.Derive(date(2026, time.January, 3))

	assert.Equal(t, date(2026, time.January, 3), attrs.Date)
	assert.Equal(t, 6, attrs.WeekdayIndex)
	assert.Equal(t, "Rohini", attrs.Nakshatra)
	assert.Equal(t, "Tritiya (3)", attrs.Tithi)
	assert.Equal(t, "Ganda", attrs.Yoga)
	assert.Equal(t, panchang.Interval{Start: "09:00", End: "10:30"}, attrs.RahuKaal)
}

func TestDeriveAttributesAreTableMembers(t *testing.T) {
	nakshatras := make(map[string]bool)
	for _, n := range panchang.Nakshatras {
		nakshatras[n] = true
	}
	tithis := make(map[string]bool)
	for _, ti := range panchang.Tithis {
		tithis[ti] = true
	}
	yogas := make(map[string]bool)
	for _, y := range panchang.Yogas {
		yogas[y] = true
	}

	for day := date(2026, time.January, 1); day.Year() == 2026; day = day.AddDate(0, 0, 1) {
		attrs := panchang.Derive(day)
		require.True(t, nakshatras[attrs.Nakshatra], "nakshatra %q on %s", attrs.Nakshatra, day)
		require.True(t, tithis[attrs.Tithi], "tithi %q on %s", attrs.Tithi, day)
		require.True(t, yogas[attrs.Yoga], "yoga %q on %s", attrs.Yoga, day)
		require.Equal(t, int(day.Weekday()), attrs.WeekdayIndex)
	}
}

func TestRahuKaalForWeekday(t *testing.T) {
	tests := []struct {
		weekday int
		want    panchang.Interval
	}{
		{0, panchang.Interval{Start: "16:30", End: "18:00"}}, // Sunday
		{1, panchang.Interval{Start: "07:30", End: "09:00"}}, // Monday
		{2, panchang.Interval{Start: "15:00", End: "16:30"}}, // Tuesday
		{3, panchang.Interval{Start: "12:00", End: "13:30"}}, // Wednesday
		{4, panchang.Interval{Start: "13:30", End: "15:00"}}, // Thursday
		{5, panchang.Interval{Start: "10:30", End: "12:00"}}, // Friday
		{6, panchang.Interval{Start: "09:00", End: "10:30"}}, // Saturday
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, panchang.RahuKaalForWeekday(tt.weekday), "weekday %d", tt.weekday)
	}
}

func TestTithiCycleRepeatsEverySixteenDays(t *testing.T) {
	a := panchang.Derive(date(2026, time.May, 1))
	b := panchang.Derive(date(2026, time.May, 17))

	assert.Equal(t, a.Tithi, b.Tithi)
}

func TestIntervalString(t *testing.T) {
	i := panchang.Interval{Start: "09:00", End: "11:30"}
	assert.Equal(t, "09:00-11:30", i.String())
}

func TestParseDate(t *testing.T) {
	parsed, err := panchang.ParseDate("2026-01-03")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 3), parsed)
	assert.Equal(t, "2026-01-03", panchang.FormatDate(parsed))

	_, err = panchang.ParseDate("03/01/2026")
	assert.Error(t, err)
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Saturday", panchang.DayName(date(2026, time.January, 3)))
	assert.Equal(t, "Sunday", panchang.DayName(date(2026, time.January, 4)))
}
