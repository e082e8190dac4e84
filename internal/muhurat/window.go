package muhurat

import (
	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

// Recommended-window decision table. The default 2.5 hour morning window is
// shifted only for the two Rahu Kaal start times that overlap it (Saturday
// 09:00 and Friday 10:30); for every other start time the default stands.
// This is a fixed table, not interval subtraction: start times outside the
// table are not checked for overlap.
var (
	defaultWindow      = panchang.Interval{Start: "09:00", End: "11:30"}
	lateMorningWindow  = panchang.Interval{Start: "10:30", End: "12:30"}
	earlyMorningWindow = panchang.Interval{Start: "08:00", End: "10:30"}
)

// SelectWindow picks the recommended muhurat window for a day given its
// Rahu Kaal interval.
func SelectWindow(rahuKaal panchang.Interval) panchang.Interval {
	switch rahuKaal.Start {
	case "09:00":
		return lateMorningWindow
	case "10:30":
		return earlyMorningWindow
	default:
		return defaultWindow
	}
}
