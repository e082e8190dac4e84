// Package panchang derives per-day calendar attributes (nakshatra, tithi,
// yoga, Rahu Kaal) for a Gregorian date.
//
// The derivation is a deterministic index scheme over fixed lookup tables,
// not an ephemeris: it does not compute true lunar or solar positions and
// applies no geolocation-based sunrise correction. Callers get reproducible
// attributes for any date, nothing more.
package panchang

import (
	"time"
)

// Interval is a daily time window in 24h "HH:MM" notation.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String renders the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return i.Start + "-" + i.End
}

// Attributes is the full derived attribute set for one calendar date.
type Attributes struct {
	Date         time.Time
	WeekdayIndex int // 0=Sunday through 6=Saturday
	Nakshatra    string
	Tithi        string
	Yoga         string
	RahuKaal     Interval
}

// Derive computes the attribute set for a date. It is pure and total: the
// same date always yields the same attributes and every valid date yields a
// value. The time-of-day and zone of the input are discarded.
func Derive(date time.Time) Attributes {
	day := date.Day()
	monthIndex := int(date.Month()) - 1
	normalized := time.Date(date.Year(), date.Month(), day, 0, 0, 0, 0, time.UTC)
	weekday := int(normalized.Weekday())

	return Attributes{
		Date:         normalized,
		WeekdayIndex: weekday,
		Nakshatra:    Nakshatras[(day+monthIndex)%27],
		Tithi:        Tithis[(day-1)%16],
		Yoga:         Yogas[(day+monthIndex+weekday)%27],
		RahuKaal:     rahuKaalByWeekday[weekday],
	}
}

// DayName returns the weekday name (Sunday, Monday, etc.) for a date.
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}
