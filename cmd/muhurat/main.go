// Package main is a development CLI that prints panchang attributes or
// ranked muhurat dates for a range without running the HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nileshjoshi/muhurat-api/internal/muhurat"
	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

func main() {
	var (
		activity = flag.String("activity", "", "activity ID to rank dates for (empty: print panchang only)")
		startStr = flag.String("start", "", "start date YYYY-MM-DD (default: today)")
		days     = flag.Int("days", 30, "number of days to scan")
		list     = flag.Bool("list", false, "list known activities and exit")
	)
	flag.Parse()

	if *list {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, rule := range muhurat.Activities() {
			fmt.Fprintf(w, "%s\t%s\n", rule.ID, rule.DisplayName)
		}
		w.Flush()
		return
	}

	start := time.Now().UTC()
	if *startStr != "" {
		parsed, err := panchang.ParseDate(*startStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -start date %q: use YYYY-MM-DD\n", *startStr)
			os.Exit(1)
		}
		start = parsed
	}
	end := start.AddDate(0, 0, *days-1)

	if *activity == "" {
		printPanchang(start, end)
		return
	}

	if _, ok := muhurat.RuleFor(*activity); !ok {
		fmt.Fprintf(os.Stderr, "unknown activity %q (use -list)\n", *activity)
		os.Exit(1)
	}

	candidates, err := muhurat.Scan(*activity, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		os.Exit(1)
	}

	if len(candidates) == 0 {
		fmt.Printf("no auspicious dates for %s between %s and %s\n",
			*activity, panchang.FormatDate(start), panchang.FormatDate(end))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tTIER\tNAKSHATRA\tTITHI\tWINDOW\tRAHU KAAL")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			panchang.FormatDate(c.Date), c.Weekday, c.Tier, c.Nakshatra,
			c.Tithi, c.RecommendedWindow, c.RahuKaal)
	}
	w.Flush()
}

func printPanchang(start, end time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tNAKSHATRA\tTITHI\tYOGA\tRAHU KAAL")
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		attrs := panchang.Derive(day)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			panchang.FormatDate(attrs.Date), panchang.DayName(attrs.Date),
			attrs.Nakshatra, attrs.Tithi, attrs.Yoga, attrs.RahuKaal)
	}
	w.Flush()
}
