// Package muhurat evaluates and ranks auspicious dates for an activity.
//
// The engine is purely computational: it derives calendar attributes via
// package panchang, tests them against the activity's compatibility rule,
// classifies qualifying days into quality tiers and recommends a time window
// clear of the day's Rahu Kaal. Nothing here performs I/O or holds mutable
// state, so all entry points are safe for concurrent use.
package muhurat

import (
	"fmt"
	"strings"
	"time"

	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

// Tier is the quality bucket for a qualifying day.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
)

// Rank returns the sort rank of a tier; lower sorts first.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 0
	case TierGood:
		return 1
	default:
		return 2
	}
}

// highlyAuspicious nakshatras promote a qualifying day to TierExcellent.
var highlyAuspicious = nakshatraSet(
	"Rohini", "Pushya", "Uttara Phalguni", "Hasta", "Shravana", "Revati")

// Candidate is one qualifying day with its derived attributes, tier and
// recommended window. Candidates are never mutated after creation.
type Candidate struct {
	Date              time.Time
	Weekday           string
	Tithi             string
	Nakshatra         string
	Yoga              string
	RecommendedWindow panchang.Interval
	RahuKaal          panchang.Interval
	Tier              Tier
	Reason            string
}

// Evaluate tests one date against an activity rule. The second return value
// is false when the day is not auspicious for the activity: either its
// nakshatra is not in the favorable set or its tithi matches an avoid rule.
// There is no partial credit; a failing day is dropped, not down-rated.
func Evaluate(date time.Time, rule ActivityRule) (Candidate, bool) {
	attrs := panchang.Derive(date)

	if !rule.FavorableNakshatras[attrs.Nakshatra] {
		return Candidate{}, false
	}

	tithiLower := strings.ToLower(attrs.Tithi)
	for _, avoid := range rule.AvoidTithiSubstrings {
		if strings.Contains(tithiLower, strings.ToLower(avoid)) {
			return Candidate{}, false
		}
	}

	tier := TierGood
	if highlyAuspicious[attrs.Nakshatra] {
		tier = TierExcellent
	}

	return Candidate{
		Date:              attrs.Date,
		Weekday:           panchang.DayName(attrs.Date),
		Tithi:             attrs.Tithi,
		Nakshatra:         attrs.Nakshatra,
		Yoga:              attrs.Yoga,
		RecommendedWindow: SelectWindow(attrs.RahuKaal),
		RahuKaal:          attrs.RahuKaal,
		Tier:              tier,
		Reason: fmt.Sprintf("%s nakshatra with %s tithi is favorable for %s",
			attrs.Nakshatra, attrs.Tithi, rule.DisplayName),
	}, true
}
