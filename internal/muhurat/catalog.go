package muhurat

// ActivityRule is the compatibility rule for one activity type: the
// nakshatras under which the activity is favorable and the tithi substrings
// that disqualify a day outright. Rules are immutable after process start.
type ActivityRule struct {
	ID                   string
	DisplayName          string
	FavorableNakshatras  map[string]bool
	AvoidTithiSubstrings []string
}

// rikta tithis (4, 9, 14) are avoided for nearly everything; new-moon and
// full-moon days are additionally avoided for the major samskaras.
var (
	avoidRikta     = []string{"4", "9", "14", "Amavasya"}
	avoidRiktaFull = []string{"4", "9", "14", "Amavasya", "Purnima"}
)

func nakshatraSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// activityOrder fixes the listing order for Activities().
var activityOrder = []string{
	"marriage",
	"house-warming",
	"first-haircut",
	"naming-ceremony",
	"thread-ceremony",
	"vehicle-purchase",
	"property-purchase",
	"business-start",
	"travel",
	"surgery",
	"education-start",
	"engagement",
}

// catalog maps activity IDs to their rules. Built once at init, read-only
// afterwards, so it is safe to share across goroutines.
var catalog = map[string]ActivityRule{
	"marriage": {
		ID:          "marriage",
		DisplayName: "Marriage (Vivah)",
		FavorableNakshatras: nakshatraSet(
			"Rohini", "Mrigashira", "Magha", "Uttara Phalguni", "Hasta",
			"Swati", "Anuradha", "Mula", "Uttara Ashadha",
			"Uttara Bhadrapada", "Revati"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
	"house-warming": {
		ID:          "house-warming",
		DisplayName: "House Warming (Griha Pravesh)",
		FavorableNakshatras: nakshatraSet(
			"Rohini", "Mrigashira", "Pushya", "Uttara Phalguni", "Hasta",
			"Chitra", "Anuradha", "Uttara Ashadha", "Shravana", "Dhanishta",
			"Uttara Bhadrapada", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"first-haircut": {
		ID:          "first-haircut",
		DisplayName: "First Haircut (Mundan)",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Mrigashira", "Punarvasu", "Pushya", "Hasta",
			"Chitra", "Swati", "Jyeshtha", "Shravana", "Dhanishta",
			"Shatabhisha", "Revati"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
	"naming-ceremony": {
		ID:          "naming-ceremony",
		DisplayName: "Naming Ceremony (Namkaran)",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Mrigashira", "Punarvasu", "Pushya",
			"Uttara Phalguni", "Hasta", "Swati", "Anuradha",
			"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
			"Uttara Bhadrapada", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"thread-ceremony": {
		ID:          "thread-ceremony",
		DisplayName: "Thread Ceremony (Upanayana)",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Punarvasu", "Pushya", "Hasta", "Chitra",
			"Swati", "Shravana", "Dhanishta", "Shatabhisha", "Revati"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
	"vehicle-purchase": {
		ID:          "vehicle-purchase",
		DisplayName: "Vehicle Purchase",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Mrigashira", "Punarvasu", "Pushya",
			"Hasta", "Chitra", "Swati", "Anuradha", "Shravana",
			"Dhanishta", "Shatabhisha", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"property-purchase": {
		ID:          "property-purchase",
		DisplayName: "Property Purchase",
		FavorableNakshatras: nakshatraSet(
			"Rohini", "Mrigashira", "Pushya", "Uttara Phalguni", "Hasta",
			"Chitra", "Anuradha", "Uttara Ashadha", "Shravana",
			"Uttara Bhadrapada", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"business-start": {
		ID:          "business-start",
		DisplayName: "Business Opening",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Pushya", "Uttara Phalguni", "Hasta",
			"Chitra", "Swati", "Anuradha", "Uttara Ashadha", "Shravana",
			"Dhanishta", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"travel": {
		ID:          "travel",
		DisplayName: "Travel (Yatra)",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Mrigashira", "Punarvasu", "Pushya", "Hasta",
			"Anuradha", "Shravana", "Dhanishta", "Revati"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
	"surgery": {
		ID:          "surgery",
		DisplayName: "Surgery",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Mrigashira", "Pushya", "Uttara Phalguni",
			"Hasta", "Anuradha", "Uttara Ashadha", "Uttara Bhadrapada"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
	"education-start": {
		ID:          "education-start",
		DisplayName: "Education Start (Vidyarambha)",
		FavorableNakshatras: nakshatraSet(
			"Ashwini", "Rohini", "Punarvasu", "Pushya", "Hasta", "Chitra",
			"Swati", "Anuradha", "Shravana", "Revati"),
		AvoidTithiSubstrings: avoidRikta,
	},
	"engagement": {
		ID:          "engagement",
		DisplayName: "Engagement (Sagai)",
		FavorableNakshatras: nakshatraSet(
			"Rohini", "Mrigashira", "Magha", "Uttara Phalguni", "Hasta",
			"Swati", "Anuradha", "Revati"),
		AvoidTithiSubstrings: avoidRiktaFull,
	},
}

// RuleFor looks up the rule for an activity ID. The second return value is
// false for an unknown activity; callers treat that as zero candidates.
func RuleFor(activityID string) (ActivityRule, bool) {
	rule, ok := catalog[activityID]
	return rule, ok
}

// Activities returns all rules in a stable display order.
func Activities() []ActivityRule {
	rules := make([]ActivityRule, 0, len(activityOrder))
	for _, id := range activityOrder {
		rules = append(rules, catalog[id])
	}
	return rules
}
