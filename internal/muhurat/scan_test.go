package muhurat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshjoshi/muhurat-api/internal/muhurat"
	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

func TestScanMarriageJanuary2026(t *testing.T) {
	candidates, err := muhurat.Scan("marriage",
		date(2026, time.January, 1), date(2026, time.January, 31))
	require.NoError(t, err)

	// Four excellent days in date order, then the lone good day
	wantDates := []string{
		"2026-01-03", "2026-01-11", "2026-01-12", "2026-01-26", "2026-01-18",
	}
	require.Len(t, candidates, len(wantDates))
	for i, c := range candidates {
		assert.Equal(t, wantDates[i], panchang.FormatDate(c.Date), "position %d", i)
	}

	for _, c := range candidates[:4] {
		assert.Equal(t, muhurat.TierExcellent, c.Tier)
	}
	assert.Equal(t, muhurat.TierGood, candidates[4].Tier)

	rule := marriageRule(t)
	for _, c := range candidates {
		assert.True(t, rule.FavorableNakshatras[c.Nakshatra],
			"%s has non-favorable nakshatra %s", c.Date, c.Nakshatra)
	}
}

func TestScanTierOrderingAndBound(t *testing.T) {
	candidates, err := muhurat.Scan("marriage",
		date(2026, time.January, 1), date(2026, time.February, 28))
	require.NoError(t, err)

	assert.Len(t, candidates, muhurat.MaxResults)

	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		require.LessOrEqual(t, prev.Tier.Rank(), cur.Tier.Rank(),
			"tier order violated at position %d", i)
		if prev.Tier == cur.Tier {
			require.False(t, cur.Date.Before(prev.Date),
				"date order violated within tier at position %d", i)
		}
	}
}

func TestScanBoundHoldsForLargeWindows(t *testing.T) {
	for _, rule := range muhurat.Activities() {
		candidates, err := muhurat.Scan(rule.ID,
			date(2026, time.January, 1), date(2026, time.December, 31))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(candidates), muhurat.MaxResults, "activity %s", rule.ID)
	}
}

func TestScanInvalidRange(t *testing.T) {
	_, err := muhurat.Scan("marriage",
		date(2026, time.February, 1), date(2026, time.January, 1))
	assert.ErrorIs(t, err, muhurat.ErrInvalidRange)
}

func TestScanSingleDayRange(t *testing.T) {
	candidates, err := muhurat.Scan("marriage",
		date(2026, time.January, 3), date(2026, time.January, 3))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Rohini", candidates[0].Nakshatra)
}

func TestScanUnknownActivity(t *testing.T) {
	candidates, err := muhurat.Scan("not-a-real-activity",
		date(2026, time.January, 1), date(2026, time.January, 31))
	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestScanNoQualifyingDays(t *testing.T) {
	// 2026-01-04 through 2026-01-10: every day either has a non-favorable
	// nakshatra for marriage or a rikta tithi, so the scan comes back empty.
	candidates, err := muhurat.Scan("marriage",
		date(2026, time.January, 4), date(2026, time.January, 10))
	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestScanFilterCorrectness(t *testing.T) {
	for _, rule := range muhurat.Activities() {
		candidates, err := muhurat.Scan(rule.ID,
			date(2026, time.March, 1), date(2026, time.June, 30))
		require.NoError(t, err)

		for _, c := range candidates {
			assert.True(t, rule.FavorableNakshatras[c.Nakshatra],
				"%s: nakshatra %s not favorable for %s",
				panchang.FormatDate(c.Date), c.Nakshatra, rule.ID)
			for _, avoid := range rule.AvoidTithiSubstrings {
				assert.NotContains(t, c.Tithi, avoid,
					"%s: tithi %s matches avoid rule %q for %s",
					panchang.FormatDate(c.Date), c.Tithi, avoid, rule.ID)
			}
		}
	}
}
