package muhurat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshjoshi/muhurat-api/internal/muhurat"
	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func marriageRule(t *testing.T) muhurat.ActivityRule {
	t.Helper()
	rule, ok := muhurat.RuleFor("marriage")
	require.True(t, ok)
	return rule
}

func TestEvaluateQualifyingDay(t *testing.T) {
	// 2026-01-03 derives Rohini / Tritiya (3), favorable for marriage
	candidate, ok := muhurat.Evaluate(date(2026, time.January, 3), marriageRule(t))
	require.True(t, ok)

	assert.Equal(t, date(2026, time.January, 3), candidate.Date)
	assert.Equal(t, "Saturday", candidate.Weekday)
	assert.Equal(t, "Rohini", candidate.Nakshatra)
	assert.Equal(t, "Tritiya (3)", candidate.Tithi)
	assert.Equal(t, muhurat.TierExcellent, candidate.Tier)
	assert.Contains(t, candidate.Reason, "Rohini")
	assert.Contains(t, candidate.Reason, "Tritiya (3)")
}

func TestEvaluateRejectsUnfavorableNakshatra(t *testing.T) {
	// 2026-01-05 derives Ardra, not favorable for marriage
	_, ok := muhurat.Evaluate(date(2026, time.January, 5), marriageRule(t))
	assert.False(t, ok)
}

func TestEvaluateRejectsAvoidedTithi(t *testing.T) {
	rule := marriageRule(t)

	// 2026-01-04 derives Mrigashira (favorable) but Chaturthi (4)
	_, ok := muhurat.Evaluate(date(2026, time.January, 4), rule)
	assert.False(t, ok, "rikta tithi 4 must disqualify")

	// 2026-01-09 derives Magha (favorable) but Navami (9)
	_, ok = muhurat.Evaluate(date(2026, time.January, 9), rule)
	assert.False(t, ok, "rikta tithi 9 must disqualify")

	// 2026-01-31 derives Mrigashira (favorable) but Purnima
	_, ok = muhurat.Evaluate(date(2026, time.January, 31), rule)
	assert.False(t, ok, "full moon must disqualify")
}

func TestEvaluateTierAssignment(t *testing.T) {
	rule := marriageRule(t)

	// Mula qualifies for marriage but is not in the highly auspicious set
	good, ok := muhurat.Evaluate(date(2026, time.January, 18), rule)
	require.True(t, ok)
	assert.Equal(t, muhurat.TierGood, good.Tier)

	// Revati is highly auspicious
	excellent, ok := muhurat.Evaluate(date(2026, time.January, 26), rule)
	require.True(t, ok)
	assert.Equal(t, muhurat.TierExcellent, excellent.Tier)
}

func TestEvaluateAttachesWindows(t *testing.T) {
	// Saturday: Rahu Kaal 09:00-10:30, so the window shifts to late morning
	candidate, ok := muhurat.Evaluate(date(2026, time.January, 3), marriageRule(t))
	require.True(t, ok)

	assert.Equal(t, panchang.Interval{Start: "09:00", End: "10:30"}, candidate.RahuKaal)
	assert.Equal(t, panchang.Interval{Start: "10:30", End: "12:30"}, candidate.RecommendedWindow)
}

func TestTierRank(t *testing.T) {
	assert.Equal(t, 0, muhurat.TierExcellent.Rank())
	assert.Equal(t, 1, muhurat.TierGood.Rank())
	assert.Equal(t, 2, muhurat.TierAverage.Rank())
}
