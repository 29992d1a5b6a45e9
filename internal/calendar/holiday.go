package calendar

import (
	"time"

	holidayjp "github.com/holiday-jp/holiday_jp-go"
)

// IsHoliday reports whether d is a recognized Japanese public holiday.
// Classification only feeds presentation, so it fails closed: any failure of
// the holiday dataset lookup counts as a non-holiday.
func IsHoliday(d time.Time) (holiday bool) {
	defer func() {
		if recover() != nil {
			holiday = false
		}
	}()
	return holidayjp.IsHoliday(d)
}
