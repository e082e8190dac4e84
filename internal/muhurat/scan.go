package muhurat

import (
	"errors"
	"sort"
	"time"
)

// ErrInvalidRange is returned when the start date is after the end date.
var ErrInvalidRange = errors.New("start date is after end date")

// MaxResults caps the number of candidates a scan returns.
const MaxResults = 10

// Scan evaluates every date from start through end inclusive against the
// rule for activityID and returns the qualifying days ranked by tier
// (excellent first) then ascending date, truncated to MaxResults.
//
// An unknown activity yields an empty result with a nil error. An empty
// result for a known activity is a normal outcome, not an error. The scan
// is linear in the number of days; callers with very large windows should
// bound them before calling.
func Scan(activityID string, start, end time.Time) ([]Candidate, error) {
	rule, ok := RuleFor(activityID)
	if !ok {
		return nil, nil
	}

	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var candidates []Candidate
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if c, ok := Evaluate(day, rule); ok {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Tier.Rank() != candidates[j].Tier.Rank() {
			return candidates[i].Tier.Rank() < candidates[j].Tier.Rank()
		}
		return candidates[i].Date.Before(candidates[j].Date)
	})

	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}
	return candidates, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
