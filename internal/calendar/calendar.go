// calendar.go
//
// Month-grid date math for the activity calendar view. Pure functions over
// time.Time; weeks start on Sunday.

package calendar

import (
	"fmt"
	"time"
)

// DateKeyLayout is the ISO date layout used for bucket keys and query params.
const DateKeyLayout = "2006-01-02"

// DayNames holds the weekday header labels, Sunday first.
var DayNames = []string{"日", "月", "火", "水", "木", "金", "土"}

// Days returns the ordered dates of the month grid containing d: from the
// Sunday on or before the first of d's month through the Saturday on or after
// the last day. The result length is always a multiple of 7.
func Days(d time.Time) []time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	days := make([]time.Time, 0, 42)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// PreviousMonth returns the date one calendar month before d, clamping the
// day of month so a short target month is never skipped.
func PreviousMonth(d time.Time) time.Time {
	return shiftMonths(d, -1)
}

// NextMonth returns the date one calendar month after d, clamping the day of
// month (e.g. Jan 31 -> Feb 28/29).
func NextMonth(d time.Time) time.Time {
	return shiftMonths(d, 1)
}

func shiftMonths(d time.Time, months int) time.Time {
	firstOfTarget := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	day := d.Day()
	if max := daysInMonth(firstOfTarget); day > max {
		day = max
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, d.Location())
}

func daysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}

// MonthLabel formats d as a "YYYY年M月" display label.
func MonthLabel(d time.Time) string {
	return fmt.Sprintf("%d年%d月", d.Year(), int(d.Month()))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DateKey formats d as an ISO "YYYY-MM-DD" bucket key.
func DateKey(d time.Time) string {
	return d.Format(DateKeyLayout)
}

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
