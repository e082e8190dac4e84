package panchang

// Nakshatras lists the 27 lunar mansions in their traditional order.
// Derivation indexes into this slice, so the order is load-bearing.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Tithis lists the 16 lunar-day labels used by the deriver. Each label
// embeds the lunar-day number so that numeric avoid rules ("4", "9", "14")
// match by substring.
var Tithis = []string{
	"Pratipada (1)",
	"Dwitiya (2)",
	"Tritiya (3)",
	"Chaturthi (4)",
	"Panchami (5)",
	"Shashthi (6)",
	"Saptami (7)",
	"Ashtami (8)",
	"Navami (9)",
	"Dashami (10)",
	"Ekadashi (11)",
	"Dwadashi (12)",
	"Trayodashi (13)",
	"Chaturdashi (14)",
	"Purnima (15)",
	"Amavasya (30)",
}

// Yogas lists the 27 luni-solar yoga names in traditional order.
var Yogas = []string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarman", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva", "Vyaghata",
	"Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha",
	"Shiva", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra",
	"Vaidhriti",
}

// rahuKaalByWeekday maps a weekday index (0=Sunday through 6=Saturday) to
// that day's Rahu Kaal interval. These are the traditional fixed slots; no
// sunrise correction is applied.
var rahuKaalByWeekday = [7]Interval{
	{Start: "16:30", End: "18:00"}, // Sunday
	{Start: "07:30", End: "09:00"}, // Monday
	{Start: "15:00", End: "16:30"}, // Tuesday
	{Start: "12:00", End: "13:30"}, // Wednesday
	{Start: "13:30", End: "15:00"}, // Thursday
	{Start: "10:30", End: "12:00"}, // Friday
	{Start: "09:00", End: "10:30"}, // Saturday
}

// RahuKaalForWeekday returns the Rahu Kaal interval for a weekday index
// (0=Sunday through 6=Saturday).
func RahuKaalForWeekday(weekday int) Interval {
	return rahuKaalByWeekday[weekday%7]
}
